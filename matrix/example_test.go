package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleAdd demonstrates elementwise addition of two 2×2 matrices.
func ExampleAdd() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {2, 1}})

	sum, _ := matrix.Add(a, b)
	fmt.Print(sum)

	// Output:
	// [5, 5]
	// [5, 5]
}

// ExampleMul demonstrates the row-parallel matrix product.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {1, 2}})

	product, _ := matrix.Mul(a, b)
	fmt.Print(product)

	// Output:
	// [4, 4]
	// [10, 8]
}

// ExampleDet shows both the defined and the undefined determinant outcome.
func ExampleDet() {
	square, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	rect, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	det, ok, _ := matrix.Det(square)
	fmt.Println(det, ok)

	_, ok, _ = matrix.Det(rect)
	fmt.Println(ok)

	// Output:
	// -2 true
	// false
}

// ExampleInverse inverts a 2×2 matrix via the adjugate method.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})

	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)

	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
}

// ExampleLU factors a matrix into unit-lower L and upper U.
func ExampleLU() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})

	lower, upper, _ := matrix.LU(m)
	fmt.Print(lower)
	fmt.Print(upper)

	// Output:
	// [1, 0]
	// [1.5, 1]
	// [4, 3]
	// [0, -1.5]
}
