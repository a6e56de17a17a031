// Package mi: result containers and their cosmetic labeling.
package mi

import (
	"fmt"
	"math"
	"strings"
)

// Grid holds one estimation result: a (len(Lags) × variable count) table of
// mutual-information estimates in nats. Rows follow the requested lag order,
// columns follow the x column order. Individual cells may be non-finite when
// the estimator underflows on degenerate input; they are stored untouched,
// never clamped.
type Grid struct {
	// Lags are the requested lag values, one per row.
	Lags []int
	// Names are optional variable labels, one per column; nil when the call
	// carried no labels. Purely cosmetic — values are identical either way.
	Names []string
	// Values is the lag-major result matrix: Values[lagIdx][varIdx].
	Values [][]float64
}

// newGrid allocates a zeroed rows×cols grid carrying the given lags/labels.
func newGrid(lags []int, names []string, cols int) *Grid {
	values := make([][]float64, len(lags))
	for i := range values {
		values[i] = make([]float64, cols)
	}
	return &Grid{Lags: lags, Names: names, Values: values}
}

// Rows returns the number of lag rows.
func (g *Grid) Rows() int { return len(g.Values) }

// Cols returns the number of variable columns.
func (g *Grid) Cols() int {
	if len(g.Values) == 0 {
		return 0
	}
	return len(g.Values[0])
}

// At returns the estimate for the lag at lagIdx and the variable at varIdx.
func (g *Grid) At(lagIdx, varIdx int) float64 { return g.Values[lagIdx][varIdx] }

// Row returns the estimates of every variable at the lag at lagIdx.
func (g *Grid) Row(lagIdx int) []float64 { return g.Values[lagIdx] }

// label returns the display name of column j: the caller-supplied label when
// present, a positional placeholder otherwise.
func (g *Grid) label(j int) string {
	if j < len(g.Names) {
		return g.Names[j]
	}
	return fmt.Sprintf("x%d", j)
}

// String renders the grid as a lag-by-variable table. This is the cosmetic
// labeling boundary: lag values index the rows and variable labels the
// columns, while the numbers are exactly the stored estimates.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("lag")
	for j := 0; j < g.Cols(); j++ {
		fmt.Fprintf(&b, "\t%s", g.label(j))
	}
	b.WriteByte('\n')
	for i, row := range g.Values {
		fmt.Fprintf(&b, "%d", g.Lags[i])
		for _, v := range row {
			fmt.Fprintf(&b, "\t%.4f", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// NormalizeValue maps a single MI estimate in nats onto the correlation
// coefficient scale: sqrt(1 - exp(-2*mi)). For two Gaussian variables this
// recovers the absolute Pearson correlation exactly; for other
// distributions it is a convenient [0, 1) rescaling. Non-positive and
// non-finite estimates (estimation noise or underflow) map to 0.
func NormalizeValue(mi float64) float64 {
	if math.IsNaN(mi) || mi <= 0 {
		return 0
	}
	return math.Sqrt(1 - math.Exp(-2*mi))
}

// Normalize returns a copy of the grid with every cell mapped onto the
// correlation coefficient scale via NormalizeValue. Lags and labels are
// shared with the receiver; the value matrix is freshly allocated.
func (g *Grid) Normalize() *Grid {
	out := newGrid(g.Lags, g.Names, g.Cols())
	for i, row := range g.Values {
		for j, v := range row {
			out.Values[i][j] = NormalizeValue(v)
		}
	}
	return out
}
