package mi_test

import (
	"fmt"
	"math"

	"github.com/atentas/ennemi/mi"
)

// ExampleEstimateMI demonstrates the shape contract of the result grid:
// one row per lag, one column per variable.
func ExampleEstimateMI() {
	n := 300
	y := make([]float64, n)
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	for i := range y {
		y[i] = math.Sin(0.2 * float64(i))
		x1[i] = math.Sin(0.2 * float64(i+1)) // x1 leads y by one step
		x2[i] = math.Cos(0.7 * float64(i))   // unrelated oscillation
	}

	opts := mi.DefaultOptions()
	grid, err := mi.EstimateMI(y, [][]float64{x1, x2}, []int{0, 1, 2}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("rows=%d cols=%d\n", grid.Rows(), grid.Cols())
	fmt.Println("lags:", grid.Lags)
	fmt.Println("x1 informative at some lag:", grid.At(0, 0) > 0.5 || grid.At(1, 0) > 0.5)
	// Output:
	// rows=3 cols=2
	// lags: [0 1 2]
	// x1 informative at some lag: true
}

// ExampleGrid_String shows the cosmetic labeling of a result grid.
func ExampleGrid_String() {
	g := &mi.Grid{
		Lags:   []int{0, 1},
		Names:  []string{"temp", "wind"},
		Values: [][]float64{{0.8, 0.05}, {0.3, 0.01}},
	}
	fmt.Print(g)
	// Output:
	// lag	temp	wind
	// 0	0.8000	0.0500
	// 1	0.3000	0.0100
}

// ExampleNormalizeValue maps a Gaussian MI estimate back onto the
// correlation coefficient scale.
func ExampleNormalizeValue() {
	rho := 0.6
	gaussianMI := -0.5 * math.Log(1-rho*rho)
	fmt.Printf("%.2f\n", mi.NormalizeValue(gaussianMI))
	// Output:
	// 0.60
}
