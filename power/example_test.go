package power_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/power"
)

// ExampleDominant finds the dominant eigenpair of a symmetric 2×2 matrix.
func ExampleDominant() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})

	res, _ := power.Dominant(m, nil)
	fmt.Printf("eigenvalue %.4f\n", res.Eigenvalue)
	fmt.Printf("eigenvector [%.4f %.4f]\n", res.Eigenvector[0], res.Eigenvector[1])

	// Output:
	// eigenvalue 3.0000
	// eigenvector [0.7071 0.7071]
}

// ExampleRayleigh estimates the eigenvalue associated with a known vector.
func ExampleRayleigh() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 1}})

	lambda, _ := power.Rayleigh(m, []float64{1, 0})
	fmt.Println(lambda)

	// Output:
	// 2
}
