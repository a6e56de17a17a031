// Package mi estimates (conditional) mutual information between a scalar
// time series and one or more candidate variables, at one or more time lags.
//
// 🚀 What does mi do?
//
//	Given a target series y, a set of variables x and a set of lags, it
//	answers "does x(t) inform y(t+lag)?" for every (lag, variable) pair:
//	  • validates shape/length/configuration consistency up front
//	  • enumerates the lag × variable cross-product of estimation tasks
//	  • lag-aligns every array to one shared observation window
//	  • optionally filters observations through a boolean mask
//	  • runs the tasks sequentially or across a bounded worker pool
//	  • assembles the scalars into a lag-by-variable result grid
//
// ✨ Alignment guarantees:
//
//   - y never shifts: its lag contribution is folded into the shared
//     [minLag, maxLag] envelope, so every requested lag is estimated on
//     the same window width and the same y observations
//   - masks are applied after windowing, in the cropped index frame, so a
//     mask position always refers to the same y observation at every lag
//   - a conditioning series shifts by lag + CondLag, with its envelope
//     contribution included in the shared crop
//
// ⚙️ Usage:
//
//	import "github.com/atentas/ennemi/mi"
//
//	opts := mi.DefaultOptions()
//	opts.Mask = workdays // use only part of the observations
//	grid, err := mi.EstimateMI(y, [][]float64{x1, x2}, []int{0, 1, 2}, &opts)
//	if err != nil {
//	  // handle mi.ErrLengthMismatch, mi.ErrLagTooLarge, ...
//	}
//	fmt.Print(grid)
//
// Execution model:
//
//   - every task is an immutable value holding read-only views of the
//     inputs; nothing is mutated for the duration of a call
//   - parallel dispatch (ParallelMode) fans tasks out over at most
//     runtime.NumCPU() workers; results are slotted by task position, so
//     completion order never affects the output
//   - any failure — precondition or per-task — aborts the whole call;
//     a partially filled grid is never returned
//
// The point estimators themselves live behind the Estimator interface;
// the ksg package provides the default implementation. A task whose mask
// leaves fewer observations than k fails inside the estimator rather than
// eagerly in the validator, matching the "necessary but not sufficient"
// k check documented on Options.
package mi
