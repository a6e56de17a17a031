// Package ennemi estimates mutual information between continuous time
// series — non-linearly, at one or more time lags, optionally conditioned
// on a third variable.
//
// 🚀 What is ennemi?
//
//	A library for exploratory analysis of time-dependent dependence
//	structure: "does x(t) inform y(t+lag)?". It combines:
//	  • A lag-alignment engine that crops every variable to a single
//	    consistent observation window shared by all requested lags
//	  • Optional conditioning (conditional MI) with its own lag offset
//	  • Optional observation masks applied after lag alignment
//	  • Transparent fan-out of independent (lag, variable) estimation
//	    tasks across CPU cores
//	  • Kraskov–Stögbauer–Grassberger k-nearest-neighbor estimators
//	    for continuous MI and conditional MI, in nats
//
// ✨ Why choose ennemi?
//
//   - Beginner-friendly – one entry point, clear option names
//   - Exact alignment guarantees – one crop width shared by every lag,
//     masks always applied in the cropped index frame
//   - Deterministic – every task is a pure function of its inputs,
//     parallel or not
//   - Extensible – plug in your own estimator behind a two-method interface
//
// Everything is organized under two subpackages:
//
//	mi/  — the estimation driver: validation, lag alignment, task
//	       enumeration, sequential/parallel execution, result grids
//	ksg/ — the KSG nearest-neighbor estimators consumed by mi by default
//
// Quick example:
//
//	opts := mi.DefaultOptions()
//	grid, err := mi.EstimateMI(y, [][]float64{x1, x2}, []int{0, 1, 2}, &opts)
//	if err != nil { ... }
//	fmt.Println(grid) // rows: lags, columns: variables, values in nats
//
// See mi/doc.go and ksg/doc.go for the detailed contracts.
package ennemi
