// Package mi: pairwise MI between every two variables of a set.
package mi

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// PairwiseGrid holds the result of PairwiseMI: one variable-by-variable
// matrix per requested lag. Values[lagIdx][i][j] is the estimated MI between
// variable i at time t+lag and variable j at time t, in nats. The diagonal
// is NaN — self-MI of a continuous variable is unbounded and carries no
// information about the data.
type PairwiseGrid struct {
	Lags   []int
	Names  []string
	Values [][][]float64
}

// At returns the estimate for the lag at lagIdx between variables i and j.
func (p *PairwiseGrid) At(lagIdx, i, j int) float64 { return p.Values[lagIdx][i][j] }

// Lag returns the full variable-by-variable matrix for the lag at lagIdx.
func (p *PairwiseGrid) Lag(lagIdx int) [][]float64 { return p.Values[lagIdx] }

// label mirrors Grid.label for pairwise output.
func (p *PairwiseGrid) label(j int) string {
	if j < len(p.Names) {
		return p.Names[j]
	}
	return fmt.Sprintf("x%d", j)
}

// String renders one labeled matrix block per lag.
func (p *PairwiseGrid) String() string {
	var b strings.Builder
	for li, m := range p.Values {
		fmt.Fprintf(&b, "lag %d\n", p.Lags[li])
		for j := range m {
			fmt.Fprintf(&b, "\t%s", p.label(j))
		}
		b.WriteByte('\n')
		for i, row := range m {
			b.WriteString(p.label(i))
			for _, v := range row {
				fmt.Fprintf(&b, "\t%.4f", v)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PairwiseMI estimates the mutual information between every ordered pair of
// variables, at each requested lag. Cell (i, j) of the lag-L matrix answers
// "does variable j inform variable i L steps later?" — so the matrices are
// symmetric at lag 0 (up to estimator noise) and generally asymmetric
// otherwise.
//
// vars is variable-major like EstimateMI's x; all series share one length.
// Conditioning, masking and dispatch follow opts exactly as in EstimateMI.
// At least two variables are required.
func PairwiseMI(vars [][]float64, lags []int, opts *Options) (*PairwiseGrid, error) {
	return PairwiseMIContext(context.Background(), vars, lags, opts)
}

// PairwiseMIContext is PairwiseMI with caller-controlled cancellation.
func PairwiseMIContext(ctx context.Context, vars [][]float64, lags []int, opts *Options) (*PairwiseGrid, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(vars) < 2 {
		return nil, ErrPairwiseVariables
	}
	// Reuse the single-target validator with the first variable standing in
	// for y: it checks that every series shares one length and that k, cond,
	// mask and names are consistent.
	if err := checkParameters(vars[0], vars, lags, &o); err != nil {
		return nil, err
	}

	n := len(vars[0])
	minLag, maxLag := lagBounds(lags, o.CondLag)
	if maxLag-minLag >= n || maxLag >= n || minLag <= -n {
		return nil, ErrLagTooLarge
	}

	// One task per (lag, target variable, source variable) triple, skipping
	// the diagonal. The pair is flattened into varIdx for the scatter below.
	nvar := len(vars)
	tasks := make([]task, 0, len(lags)*nvar*(nvar-1))
	for li, lag := range lags {
		for i := 0; i < nvar; i++ {
			for j := 0; j < nvar; j++ {
				if i == j {
					continue
				}
				tasks = append(tasks, task{
					lagIdx:  li,
					varIdx:  i*nvar + j,
					x:       vars[j],
					y:       vars[i],
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
	}

	parallel, err := shouldParallel(o.Parallel, len(tasks), n)
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

	out := &PairwiseGrid{Lags: lags, Names: o.Names, Values: make([][][]float64, len(lags))}
	for li := range lags {
		m := make([][]float64, nvar)
		for i := range m {
			m[i] = make([]float64, nvar)
			m[i][i] = math.NaN()
		}
		out.Values[li] = m
	}
	for idx, v := range results {
		tk := tasks[idx]
		out.Values[tk.lagIdx][tk.varIdx/nvar][tk.varIdx%nvar] = v
	}
	return out, nil
}
