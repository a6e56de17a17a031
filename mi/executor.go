// Package mi: task execution — sequential loop or bounded worker pool.
package mi

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// shouldParallel resolves the dispatch mode for a call.
// An explicit override wins; otherwise fan-out is chosen only when there is
// more than one task and enough observations per task to amortize the
// scheduling overhead.
func shouldParallel(mode ParallelMode, numTasks, numObs int) (bool, error) {
	switch mode {
	case ParallelAlways:
		return true, nil
	case ParallelDisable:
		return false, nil
	case ParallelAuto:
		return numTasks > 1 && numObs > parallelThreshold, nil
	default:
		return false, ErrUnknownParallel
	}
}

// runTasks executes every task and returns the scalars in enumeration order.
// Parallel mode fans the tasks out over a worker pool bounded by the
// processor count; each worker writes its result into the slot matching the
// task's enumeration position, so completion order can never corrupt the
// association between a result and its (lag, variable) origin.
//
// Any task failure cancels the remaining work and fails the whole call —
// no partial results are ever returned.
func runTasks(ctx context.Context, tasks []task, est Estimator, parallel bool) ([]float64, error) {
	results := make([]float64, len(tasks))

	if !parallel {
		for i, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := t.run(est)
			if err != nil {
				return nil, err
			}
			results[i] = v
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := t.run(est)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
