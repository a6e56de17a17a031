package ksg_test

import (
	"math"
	"testing"

	"github.com/atentas/ennemi/ksg"
)

// benchmarkMI is a helper that runs the estimator on n smooth observations.
func benchmarkMI(b *testing.B, n, k int) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(0.11 * float64(i))
		y[i] = math.Cos(0.07*float64(i)) + 0.4*x[i]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ksg.MI(x, y, k); err != nil {
			b.Fatalf("MI failed: %v", err)
		}
	}
}

// BenchmarkMI_Small measures the quadratic neighbor search at N=200.
func BenchmarkMI_Small(b *testing.B) { benchmarkMI(b, 200, 3) }

// BenchmarkMI_Medium measures the quadratic neighbor search at N=1000.
func BenchmarkMI_Medium(b *testing.B) { benchmarkMI(b, 1000, 3) }

// BenchmarkCondMI_Small measures the conditional estimator at N=200.
func BenchmarkCondMI_Small(b *testing.B) {
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(0.11 * float64(i))
		z[i] = math.Cos(0.05 * float64(i))
		y[i] = 0.5*x[i] + 0.5*z[i]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ksg.CondMI(x, y, z, 3); err != nil {
			b.Fatalf("CondMI failed: %v", err)
		}
	}
}
