// Package mi: option types and the estimator collaborator boundary.
package mi

// DefaultK is the neighbor count used when the caller does not override it.
// Small k keeps the estimator's variance low at the cost of some bias;
// k = 3 is the customary default for the KSG family.
const DefaultK = 3

// parallelThreshold is the minimum y length at which automatic dispatch
// considers parallel execution worthwhile. Fan-out has fixed per-task
// scheduling cost that only pays off with enough data per task.
const parallelThreshold = 200

// ParallelMode controls how (lag, variable) tasks are executed.
//
//   - ParallelAuto    — decide by a size heuristic: run in parallel iff
//     there is more than one task AND len(y) > 200.
//   - ParallelAlways  — always fan tasks out across a bounded worker pool
//     sized to the available processor count.
//   - ParallelDisable — always run tasks sequentially, in enumeration order.
type ParallelMode int

const (
	// ParallelAuto mode: a throughput heuristic picks sequential or parallel.
	ParallelAuto ParallelMode = iota

	// ParallelAlways mode: every task runs on the worker pool.
	ParallelAlways

	// ParallelDisable mode: every task runs in the calling goroutine.
	ParallelDisable
)

// Estimator is the boundary to the information-theoretic point estimators.
// The mi package performs only alignment and orchestration; the actual
// mutual-information mathematics live behind this interface.
//
// Implementations must be pure: the same slices and k always produce the
// same scalar, and no input slice is mutated. MI reports mutual information
// between the aligned xs and ys in nats; CondMI reports conditional mutual
// information given the aligned zs. Either may return a non-finite value on
// degenerate input instead of an error — such values are placed in the
// result grid untouched.
type Estimator interface {
	MI(xs, ys []float64, k int) (float64, error)
	CondMI(xs, ys, zs []float64, k int) (float64, error)
}

// Options configures an estimation call.
//
// Fields:
//   - K         — neighbor count of the estimator; must be >= 1 and smaller
//     than the number of observations left after cropping.
//   - Cond      — optional conditioning series of len(y) observations; when
//     set, conditional MI is estimated instead of plain MI.
//   - CondLag   — additional lag added to every base lag, applied only when
//     forming the conditioning window. Default 0.
//   - Mask      — optional per-observation eligibility flags of len(y);
//     true marks a y index (and the lag-shifted x/cond indices aligned with
//     it) as usable. Applied after lag alignment, never before.
//   - Parallel  — sequential/parallel dispatch override, see ParallelMode.
//   - Names     — optional cosmetic variable labels carried onto the output
//     grid; must have one entry per x column when set. Values are unaffected.
//   - Estimator — optional collaborator override. Nil selects the ksg
//     package's KSG estimators.
//
// Example:
//
//	opts := mi.DefaultOptions()
//	opts.Cond = temperature
//	opts.CondLag = 1
//	grid, err := mi.EstimateMI(y, [][]float64{x1, x2}, []int{0, 1, 2}, &opts)
type Options struct {
	K         int
	Cond      []float64
	CondLag   int
	Mask      []bool
	Parallel  ParallelMode
	Names     []string
	Estimator Estimator
}

// DefaultOptions returns the canonical starting configuration:
// k = 3, no conditioning, no mask, automatic dispatch, default estimator.
func DefaultOptions() Options {
	return Options{K: DefaultK}
}
