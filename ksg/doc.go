// Package ksg implements k-nearest-neighbor estimators for the mutual
// information of continuous variables, in nats.
//
// 🚀 What is KSG?
//
//	The Kraskov–Stögbauer–Grassberger estimator measures statistical
//	dependence directly from continuous samples — no binning, no density
//	model. For each sample, the distance to its k-th nearest neighbor in
//	the joint space sets a local scale; counting how many marginal
//	neighbors fall inside that scale yields an almost unbiased MI
//	estimate. Two variants are provided:
//	  • MI     — unconditional MI, Kraskov et al. (2004), algorithm 1
//	  • CondMI — conditional MI, Frenzel & Pompe (2007)
//
// ⚙️ Usage:
//
//	import "github.com/atentas/ennemi/ksg"
//
//	v, err := ksg.MI(xs, ys, 3)
//	c, err := ksg.CondMI(xs, ys, zs, 3)
//
// The Estimators adapter satisfies the mi.Estimator interface and is the
// default collaborator of the mi package.
//
// Numeric notes:
//
//   - results are in natural-log units (nats)
//   - estimates can be slightly negative for independent data; that is
//     estimation noise, not an error
//   - many identical observations (discrete-valued or quantized data)
//     break the continuous-density assumption and may produce inaccurate
//     results; add low-amplitude noise to such data and try again
//   - neighbor search is exact brute force under the Chebyshev metric:
//     O(N² log N) time. Adequate for the series lengths this library
//     targets; plug a custom mi.Estimator in for very large N.
//
// References:
//
//	Kraskov, Stögbauer, Grassberger (2004): Estimating mutual information.
//	Physical Review E 69. doi:10.1103/PhysRevE.69.066138
//	Frenzel, Pompe (2007): Partial mutual information for coupling analysis
//	of multivariate time series. Physical Review Letters 99.
package ksg
