package mi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atentas/ennemi/mi"
)

// TestNormalizeValue checks the nats-to-correlation-scale mapping, including
// the exact Gaussian round trip and the non-positive/non-finite clamps.
func TestNormalizeValue(t *testing.T) {
	// For Gaussian variables MI = -0.5*ln(1-rho^2); normalizing recovers rho.
	rho := 0.8
	gaussianMI := -0.5 * math.Log(1-rho*rho)
	assert.InDelta(t, rho, mi.NormalizeValue(gaussianMI), 1e-12, "Gaussian round trip")

	assert.Equal(t, 0.0, mi.NormalizeValue(0), "zero MI")
	assert.Equal(t, 0.0, mi.NormalizeValue(-0.02), "estimation noise below zero")
	assert.Equal(t, 0.0, mi.NormalizeValue(math.Inf(-1)), "underflowed estimate")
	assert.Equal(t, 0.0, mi.NormalizeValue(math.NaN()), "non-finite estimate")
}

// TestGrid_Normalize checks shape preservation and per-cell mapping.
func TestGrid_Normalize(t *testing.T) {
	g := &mi.Grid{
		Lags:   []int{0, 1},
		Names:  []string{"a", "b"},
		Values: [][]float64{{0.5, -0.1}, {0, 2.0}},
	}
	n := g.Normalize()

	require.Equal(t, g.Rows(), n.Rows())
	require.Equal(t, g.Cols(), n.Cols())
	assert.Equal(t, g.Lags, n.Lags)
	assert.Equal(t, g.Names, n.Names)

	for i, row := range g.Values {
		for j, v := range row {
			assert.InDelta(t, mi.NormalizeValue(v), n.At(i, j), 1e-15, "cell (%d,%d)", i, j)
		}
	}
	assert.Equal(t, 0.5, g.At(0, 0), "receiver stays untouched")
}

// TestGrid_String checks the labeled table rendering.
func TestGrid_String(t *testing.T) {
	g := &mi.Grid{
		Lags:   []int{0, 2},
		Names:  []string{"temp", "wind"},
		Values: [][]float64{{1, 0.25}, {0.5, 0}},
	}
	want := "lag\ttemp\twind\n0\t1.0000\t0.2500\n2\t0.5000\t0.0000\n"
	assert.Equal(t, want, g.String())
}

// TestGrid_StringUnlabeled checks the positional fallback labels.
func TestGrid_StringUnlabeled(t *testing.T) {
	g := &mi.Grid{
		Lags:   []int{1},
		Values: [][]float64{{0.125, 0.5}},
	}
	want := "lag\tx0\tx1\n1\t0.1250\t0.5000\n"
	assert.Equal(t, want, g.String())
}
