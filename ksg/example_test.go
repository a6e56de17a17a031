package ksg_test

import (
	"fmt"
	"math"

	"github.com/atentas/ennemi/ksg"
)

// ExampleMI shows that a noiseless monotone relation carries far more than
// one nat of information, while the exact value depends on N and k.
func ExampleMI() {
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 0.5
	}

	v, err := ksg.MI(x, y, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v > 1)
	// Output:
	// true
}

// ExampleCondMI shows conditioning removing a shared driver: x and y only
// depend on each other through z.
func ExampleCondMI() {
	n := 400
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := range x {
		z[i] = math.Sin(0.1 * float64(i))
		x[i] = z[i] + 0.01*math.Sin(7.3*float64(i))
		y[i] = z[i] + 0.01*math.Cos(5.1*float64(i))
	}

	direct, _ := ksg.MI(x, y, 3)
	conditioned, _ := ksg.CondMI(x, y, z, 3)
	fmt.Println(direct > 1, conditioned < direct)
	// Output:
	// true true
}
