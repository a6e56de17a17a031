package ksg

// Estimators adapts the package-level MI/CondMI functions to the
// mi.Estimator interface. The zero value is ready to use.
type Estimators struct{}

// MI implements mi.Estimator.
func (Estimators) MI(xs, ys []float64, k int) (float64, error) {
	return MI(xs, ys, k)
}

// CondMI implements mi.Estimator.
func (Estimators) CondMI(xs, ys, zs []float64, k int) (float64, error) {
	return CondMI(xs, ys, zs, k)
}
