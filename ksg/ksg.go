package ksg

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mathext"
)

var (
	// ErrLengthMismatch indicates input series of unequal length.
	ErrLengthMismatch = errors.New("ksg: input series must have equal length")

	// ErrBadK signals a non-positive neighbor count.
	ErrBadK = errors.New("ksg: k must be at least 1")

	// ErrKTooLarge signals that k is not smaller than the observation count.
	ErrKTooLarge = errors.New("ksg: k must be smaller than the number of observations")
)

// MI estimates the mutual information between two continuous variables in
// nats, using algorithm 1 of Kraskov, Stögbauer & Grassberger (2004):
// for every point, the Chebyshev distance ε to its k-th nearest neighbor in
// the joint (x, y) space is found, the marginal neighbors strictly closer
// than ε are counted, and
//
//	MI = ψ(k) + ψ(N) − ⟨ψ(nx+1) + ψ(ny+1)⟩.
//
// The estimate may be slightly negative for independent data (estimation
// noise) and inaccurate when the input contains many identical values.
// Complexity: O(N² log N) time, O(N) extra memory.
func MI(x, y []float64, k int) (float64, error) {
	n := len(x)
	if len(y) != n {
		return 0, ErrLengthMismatch
	}
	if k < 1 {
		return 0, ErrBadK
	}
	if k >= n {
		return 0, ErrKTooLarge
	}

	// Sorted projections let the marginal counts run in O(log N) each.
	xSorted := sortedCopy(x)
	ySorted := sortedCopy(y)

	dists := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dists[j] = math.Max(math.Abs(x[j]-x[i]), math.Abs(y[j]-y[i]))
		}
		dists[i] = math.Inf(1) // a point is not its own neighbor
		sort.Float64s(dists)
		eps := dists[k-1]

		nx := countCloser(xSorted, x[i], eps)
		ny := countCloser(ySorted, y[i], eps)
		sum += mathext.Digamma(float64(nx+1)) + mathext.Digamma(float64(ny+1))
	}

	nf := float64(n)
	return mathext.Digamma(float64(k)) + mathext.Digamma(nf) - sum/nf, nil
}

// CondMI estimates the conditional mutual information I(x; y | z) in nats,
// using the Frenzel & Pompe (2007) extension of the KSG estimator: ε comes
// from the k-th neighbor in the joint (x, y, z) space under the Chebyshev
// metric, neighbors strictly closer than ε are counted in the (x, z),
// (y, z) and (z) subspaces, and
//
//	CMI = ψ(k) − ⟨ψ(nxz+1) + ψ(nyz+1) − ψ(nz+1)⟩.
//
// Complexity: O(N² log N) time, O(N) extra memory.
func CondMI(x, y, z []float64, k int) (float64, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return 0, ErrLengthMismatch
	}
	if k < 1 {
		return 0, ErrBadK
	}
	if k >= n {
		return 0, ErrKTooLarge
	}

	dists := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := math.Max(math.Abs(x[j]-x[i]), math.Abs(y[j]-y[i]))
			dists[j] = math.Max(d, math.Abs(z[j]-z[i]))
		}
		dists[i] = math.Inf(1)
		sort.Float64s(dists)
		eps := dists[k-1]

		var nxz, nyz, nz int
		if eps > 0 {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				dz := math.Abs(z[j] - z[i])
				if dz >= eps {
					continue
				}
				nz++
				if math.Abs(x[j]-x[i]) < eps {
					nxz++
				}
				if math.Abs(y[j]-y[i]) < eps {
					nyz++
				}
			}
		}
		sum += mathext.Digamma(float64(nxz+1)) +
			mathext.Digamma(float64(nyz+1)) -
			mathext.Digamma(float64(nz+1))
	}

	return mathext.Digamma(float64(k)) - sum/float64(n), nil
}

// sortedCopy returns an ascending copy of a, leaving a untouched.
func sortedCopy(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	sort.Float64s(out)
	return out
}

// countCloser returns how many elements of the ascending slice lie strictly
// within eps of center, excluding the point itself. With eps = 0 the open
// interval is empty, which matches the estimator's strict-inequality count.
func countCloser(sorted []float64, center, eps float64) int {
	if eps == 0 {
		return 0
	}
	lo := sort.Search(len(sorted), func(m int) bool { return sorted[m] > center-eps })
	hi := sort.Search(len(sorted), func(m int) bool { return sorted[m] >= center+eps })
	// The interval (center-eps, center+eps) contains the point itself.
	return hi - lo - 1
}
