// Package mi: task descriptors and the lag-alignment engine.
//
// A task is one self-contained (lag, variable) estimation unit — the grain
// of parallelism. Tasks are immutable after enumeration and hold read-only
// views of the shared input arrays; no task mutates shared state.
package mi

// task fully describes one (lag, variable) estimation unit. It carries
// everything the single-task function needs, so it can be handed to any
// worker without touching call-level state.
type task struct {
	lagIdx int // row of the result grid this task fills
	varIdx int // column of the result grid this task fills

	x    []float64 // the one variable column this task estimates against
	y    []float64 // the shared target series (never shifted)
	lag  int       // this task's own lag, applied to x
	cond []float64 // optional conditioning series, nil when absent
	// condLag is added to lag only when forming the conditioning window.
	condLag int

	// maxLag/minLag are the call-wide lag bounds shared by every task; they
	// determine the single crop width applied consistently across all lags.
	maxLag, minLag int

	k    int
	mask []bool // optional eligibility flags, nil when absent
}

// enumerateTasks builds the full ordered cross-product of (lag position,
// variable position) pairs — lag-major, variable-minor — and one task per
// pair. maxLag/minLag are precomputed once and shared.
// Complexity: O(len(lags)·len(x)) descriptors, no data copying.
func enumerateTasks(y []float64, x [][]float64, lags []int, maxLag, minLag int, o *Options) []task {
	tasks := make([]task, 0, len(lags)*len(x))
	for li, lag := range lags {
		for vi, col := range x {
			tasks = append(tasks, task{
				lagIdx:  li,
				varIdx:  vi,
				x:       col,
				y:       y,
				lag:     lag,
				cond:    o.Cond,
				condLag: o.CondLag,
				maxLag:  maxLag,
				minLag:  minLag,
				k:       o.K,
				mask:    o.Mask,
			})
		}
	}
	return tasks
}

// lagBounds folds the base lags, their cond-lag shifted counterparts and
// zero into the call-wide [minLag, maxLag] envelope. The cond-lag term
// participates unconditionally: it defaults to zero and is therefore a no-op
// unless set. Zero is always inside the envelope because y itself carries
// lag 0 — this keeps the window start non-negative for all-negative lag
// sets. Guarantees minLag <= 0 <= maxLag.
func lagBounds(lags []int, condLag int) (minLag, maxLag int) {
	for _, l := range lags {
		minLag = min(minLag, l, l+condLag)
		maxLag = max(maxLag, l, l+condLag)
	}
	return minLag, maxLag
}

// window returns the lag-aligned view of a under the shared crop bounds.
// The slice starts at maxLag-lag and ends at len(a)-lag+minLag, so every
// array cropped with the same bounds yields the same number of observations
// regardless of its own lag: N - (maxLag - minLag). The target series y is
// windowed with lag = 0 — y never shifts; its lag contribution is folded
// entirely into maxLag/minLag.
func window(a []float64, lag, maxLag, minLag int) []float64 {
	return a[maxLag-lag : len(a)-lag+minLag]
}

// maskWindow returns the mask cropped to y's window — the one index frame
// shared by every aligned array of the task.
func maskWindow(mask []bool, maxLag, minLag int) []bool {
	return mask[maxLag : len(mask)+minLag]
}

// filterMasked keeps the elements of a whose mask position is true,
// preserving relative order. Filtering always happens after windowing so
// mask and window use consistent index frames.
func filterMasked(a []float64, mask []bool) []float64 {
	out := make([]float64, 0, len(a))
	for i, keep := range mask {
		if keep {
			out = append(out, a[i])
		}
	}
	return out
}

// align produces the lag-aligned, optionally mask-filtered observation
// slices of one task. zs is nil exactly when no conditioning series is set.
// Pre-mask, xs, ys and zs all share the same length.
func (t task) align() (xs, ys, zs []float64) {
	xs = window(t.x, t.lag, t.maxLag, t.minLag)
	ys = window(t.y, 0, t.maxLag, t.minLag)
	if t.cond != nil {
		// The conditioning window carries its additional lag term.
		zs = window(t.cond, t.lag+t.condLag, t.maxLag, t.minLag)
	}

	if t.mask != nil {
		sub := maskWindow(t.mask, t.maxLag, t.minLag)
		xs = filterMasked(xs, sub)
		ys = filterMasked(ys, sub)
		if zs != nil {
			zs = filterMasked(zs, sub)
		}
	}
	return xs, ys, zs
}

// run aligns the task's observation windows and hands them to the estimator.
// This is the single boundary call into the external collaborator; it
// performs no numeric computation of its own.
func (t task) run(est Estimator) (float64, error) {
	xs, ys, zs := t.align()
	if t.cond == nil {
		return est.MI(xs, ys, t.k)
	}
	return est.CondMI(xs, ys, zs, t.k)
}
