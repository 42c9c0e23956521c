// Package main provides the linalg demo CLI entry point.
// It builds small sample matrices and vectors, invokes the public operation
// surface and prints human-readable results. No computation happens here —
// everything goes through the matrix, vector and power packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/power"
	"github.com/katalvlaran/linalg/vector"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "linalg-demo",
		Short:   "Walk through the linalg operation surface on sample data",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDemo prints the full walkthrough: matrix arithmetic, decompositions,
// norms, vector kernels, the dominant eigenpair and a Kronecker product.
func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	// Sample matrices.
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	b, err := matrix.NewDenseFromRows([][]float64{{4, 3}, {2, 1}})
	if err != nil {
		return err
	}

	// Matrix Addition.
	if sum, err := matrix.Add(a, b); err == nil {
		fmt.Fprintf(out, "Matrix Addition:\n%v", sum)
	}

	// Matrix Multiplication.
	if product, err := matrix.Mul(a, b); err == nil {
		fmt.Fprintf(out, "Matrix Multiplication:\n%v", product)
	}

	// Matrix Transpose.
	if tr, err := matrix.Transpose(a); err == nil {
		fmt.Fprintf(out, "Matrix Transpose:\n%v", tr)
	}

	// Matrix Determinant.
	if det, ok, err := matrix.Det(a); err == nil && ok {
		fmt.Fprintf(out, "Matrix Determinant: %g\n", det)
	}

	// Matrix Inverse.
	if inv, err := matrix.Inverse(a); err == nil {
		fmt.Fprintf(out, "Matrix Inverse:\n%v", inv)
	}

	// Matrix LU Decomposition.
	if lower, upper, err := matrix.LU(a); err == nil {
		fmt.Fprintf(out, "Matrix LU Decomposition - L:\n%v", lower)
		fmt.Fprintf(out, "Matrix LU Decomposition - U:\n%v", upper)
	}

	// Matrix Norms and Trace.
	if n, err := matrix.L1Norm(a); err == nil {
		fmt.Fprintf(out, "Matrix L1 Norm: %g\n", n)
	}
	if n, err := matrix.L2Norm(a); err == nil {
		fmt.Fprintf(out, "Matrix L2 Norm: %g\n", n)
	}
	if n, err := matrix.InfinityNorm(a); err == nil {
		fmt.Fprintf(out, "Matrix Infinity Norm: %g\n", n)
	}
	if tr, err := matrix.Trace(a); err == nil {
		fmt.Fprintf(out, "Matrix Trace: %g\n", tr)
	}

	// Sample vectors.
	v1 := []float64{1, 2, 3}
	v2 := []float64{4, 5, 6}

	// Vector kernels.
	if sum, err := vector.Add(v1, v2); err == nil {
		fmt.Fprintf(out, "Vector Addition: %v\n", sum)
	}
	if dot, err := vector.Dot(v1, v2); err == nil {
		fmt.Fprintf(out, "Vector Dot Product: %g\n", dot)
	}
	fmt.Fprintf(out, "Vector Magnitude: %g\n", vector.Magnitude(v1))
	fmt.Fprintf(out, "Vector Normalization: %v\n", vector.Normalize(v1))
	fmt.Fprintf(out, "Vector L1 Norm: %g\n", vector.L1Norm(v1))
	fmt.Fprintf(out, "Vector L2 Norm: %g\n", vector.L2Norm(v1))

	// Dominant eigenpair of a symmetric sample.
	eig, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	if err != nil {
		return err
	}
	if res, err := power.Dominant(eig, nil); err == nil {
		fmt.Fprintf(out, "Eigenvector: %v\n", res.Eigenvector)
		fmt.Fprintf(out, "Corresponding Eigenvalue: %g\n", res.Eigenvalue)
	}

	// Kronecker Product.
	m2, err := matrix.NewDenseFromRows([][]float64{{0, 5}, {6, 7}})
	if err != nil {
		return err
	}
	if kron, err := matrix.Kronecker(a, m2); err == nil {
		fmt.Fprintf(out, "Kronecker Product:\n%v", kron)
	}

	return nil
}
