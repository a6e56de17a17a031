package mi

import (
	"context"
	"fmt"

	"github.com/atentas/ennemi/ksg"
)

// defaultEstimator backs calls that do not override Options.Estimator.
var defaultEstimator Estimator = ksg.Estimators{}

// EstimateMI estimates the mutual information between y and each x variable,
// at each requested lag.
//
// The result is a grid whose rows follow the lag order and whose columns
// follow the x column order, each cell the estimated MI in nats for that
// (lag, variable) pair. The time lag is interpreted as y(t+lag) ~ x(t): a
// positive lag means "x earlier than y by that many steps". Lags are applied
// to x (and cond) only — y itself never shifts; instead every array is
// cropped to one shared window wide enough for all requested lags, so every
// row of the grid is estimated on the same number of observations.
//
// x is variable-major: each element is one variable's observations and must
// have the same length as y. Lag magnitudes must be strictly smaller than
// that length. Conditioning, masking, dispatch and labeling are configured
// through opts; nil opts selects DefaultOptions.
//
// If the data contain discrete values or many identical observations, the
// default estimator may return inaccurate or non-finite results. In that
// case, add low-amplitude noise to the data and try again.
//
// Any precondition violation or task failure aborts the whole call with a
// descriptive error; a partially filled grid is never returned.
func EstimateMI(y []float64, x [][]float64, lags []int, opts *Options) (*Grid, error) {
	return EstimateMIContext(context.Background(), y, x, lags, opts)
}

// EstimateMISingle estimates the mutual information between y and a single
// x variable at a single lag, returning the scalar directly. It is a
// convenience wrapper over EstimateMI's (1, 1) grid.
func EstimateMISingle(y, x []float64, lag int, opts *Options) (float64, error) {
	grid, err := EstimateMI(y, [][]float64{x}, []int{lag}, opts)
	if err != nil {
		return 0, err
	}
	return grid.At(0, 0), nil
}

// EstimateMIContext is EstimateMI with caller-controlled cancellation.
// Cancelling ctx aborts the call between tasks; already-running tasks finish
// but their results are discarded. There are no partial results.
func EstimateMIContext(ctx context.Context, y []float64, x [][]float64, lags []int, opts *Options) (*Grid, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if err := checkParameters(y, x, lags, &o); err != nil {
		return nil, err
	}

	// The lag envelope determines the one crop width shared by every task.
	minLag, maxLag := lagBounds(lags, o.CondLag)
	if maxLag-minLag >= len(y) || maxLag >= len(y) || minLag <= -len(y) {
		return nil, ErrLagTooLarge
	}

	tasks := enumerateTasks(y, x, lags, maxLag, minLag, &o)
	parallel, err := shouldParallel(o.Parallel, len(tasks), len(y))
	if err != nil {
		return nil, err
	}

	est := o.Estimator
	if est == nil {
		est = defaultEstimator
	}
	results, err := runTasks(ctx, tasks, est, parallel)
	if err != nil {
		return nil, err
	}

	// Scatter each scalar into the cell of its originating index pair.
	grid := newGrid(lags, o.Names, len(x))
	for i, t := range tasks {
		grid.Values[t.lagIdx][t.varIdx] = results[i]
	}
	return grid, nil
}

// checkParameters validates shape, length and configuration consistency
// before any work begins. It has no side effects beyond returning the first
// violated precondition.
func checkParameters(y []float64, x [][]float64, lags []int, o *Options) error {
	if len(y) == 0 {
		return ErrNoObservations
	}
	if len(x) == 0 {
		return ErrNoVariables
	}
	if len(lags) == 0 {
		return ErrNoLags
	}
	for i, col := range x {
		if len(col) != len(y) {
			return fmt.Errorf("variable %d: %w", i, ErrLengthMismatch)
		}
	}
	if o.Cond != nil && len(o.Cond) != len(y) {
		return ErrCondLength
	}
	if o.Mask != nil && len(o.Mask) != len(y) {
		return ErrMaskLength
	}
	if o.Names != nil && len(o.Names) != len(x) {
		return ErrNamesLength
	}
	if o.K < 1 {
		return ErrBadK
	}
	// Necessary but not sufficient: masking can still starve an individual
	// task, which then fails inside the estimator.
	if len(y) <= o.K {
		return ErrKTooLarge
	}
	return nil
}
