package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/startour/matrix"
)

// ExampleNewSquare shows one evaporate-then-deposit cycle on a 3×3 pheromone matrix.
func ExampleNewSquare() {
	tau, err := matrix.NewSquare(3, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tau.Scale(1 - 0.5)     // evaporation with rho = 0.5
	_ = tau.AddAt(0, 1, 2) // deposit on edge 0-1
	_ = tau.AddAt(1, 0, 2)

	for i := 0; i < tau.Rows(); i++ {
		row, _ := tau.Row(i)
		fmt.Println(row)
	}
	// Output:
	// [0.5 2.5 0.5]
	// [2.5 0.5 0.5]
	// [0.5 0.5 0.5]
}
