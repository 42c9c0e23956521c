// SPDX-License-Identifier: MIT
// Package matrix: arithmetic and structural kernels over the Matrix
// interface — element-wise addition/subtraction, scalar scaling, matrix
// multiplication, transpose, Kronecker product and matrix–vector multiply.
// All kernels perform strict fail-fast validation, return sentinel errors on
// dimension mismatches, and never mutate their operands.
//
// Purpose:
//   - Declare canonical arithmetic kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Element-wise fast paths run on flat storage via viterin/vek; fallbacks
//     materialize hidden implementations once through toDense.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/viterin/vek"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot-product style accumulations.
const ZeroSum = 0.0

// ZeroDet is the sentinel value for detecting an exactly-zero determinant
// in the Inverse singularity gate.
const ZeroDet = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opKronecker = "Kronecker"
	opMatVec    = "MatVec"
	opDet       = "Det"
	opInverse   = "Inverse"
	opLU        = "LU"
	opNorm      = "Norm"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and fast-path.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a,b), ValidateSameShape(a, b).
//   - Stage 2: Fast-path if both are *Dense — single vek call on the flat
//     slices. Otherwise materialize via toDense and do the same.
//
// Determinism:
//   - Element-wise with no cross-cell reduction; scheduling cannot reorder it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate operands are present.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Validate identical shapes before any allocation.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Materialize flat storage (no copy when already *Dense).
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single vectorized pass over the flat slices.
	var data []float64
	if sign >= 0 {
		data = vek.Add(ad.data, bd.data)
	} else {
		data = vek.Sub(ad.data, bd.data)
	}

	return &Dense{r: ad.r, c: ad.c, data: data}, nil
}

// Add returns the elementwise sum a + b.
// Requires identical shapes; fails with ErrDimensionMismatch otherwise.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference a - b.
// Requires identical shapes; fails with ErrDimensionMismatch otherwise.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m elementwise. Total for any finite alpha.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Vectorized scalar multiply into a fresh slice.
	return &Dense{r: d.r, c: d.c, data: vek.MulNumber(d.data, alpha)}, nil
}

// Mul computes the matrix product a · b.
// Implementation:
//   - Stage 1: ValidateNotNil(a,b) and ValidateMulCompat (a.Cols == b.Rows)
//     BEFORE any fan-out, so invalid input wastes no work.
//   - Stage 2: fan row computations out via forEachIndex; row i of the output
//     is written only by unit i, then merged by row index.
//
// Behavior highlights:
//   - out[i,j] = Σ_k a[i,k]·b[k,j] with fixed k-order inside each cell, so the
//     result is bit-for-bit identical to the sequential reference.
//
// Inputs:
//   - a: n×p Matrix; b: p×m Matrix.
//
// Returns:
//   - Matrix: fresh n×m Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Determinism:
//   - Units write disjoint rows; merge is by index, never completion order.
//
// Complexity:
//   - Time O(n*m*p) work spread across workerLimit goroutines, Space O(n*m).
//
// AI-Hints:
//   - Keep operands as *Dense to skip the interface materialization copy.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands eagerly, before any goroutine is spawned.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Materialize flat storage once.
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, p, m := ad.r, ad.c, bd.c
	out, err := NewDense(n, m)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Per-row units: unit i owns output row i exclusively.
	err = forEachIndex(n, func(i int) error {
		var acc float64
		var j, k int
		aBase := i * p          // base offset of row i in a
		outBase := i * m        // base offset of row i in out
		for j = 0; j < m; j++ { // iterate output columns
			acc = ZeroSum
			for k = 0; k < p; k++ { // fixed k-order keeps FP reduction stable
				acc += ad.data[aBase+k] * bd.data[k*m+j]
			}
			out.data[outBase+j] = acc
		}

		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Transpose returns mᵀ with out[j,i] = m[i,j]. Total: Transpose(Transpose(m))
// equals m for every m.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// Fixed i→j order; out(j,i) = m(i,j).
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Kronecker computes the Kronecker (tensor) product a ⊗ b.
// Implementation:
//   - Stage 1: ValidateNotNil for both operands; no shape precondition — the
//     product is defined for any pair of shapes.
//   - Stage 2: quadruple loop in fixed (aRow, aCol, bRow, bCol) order writing
//     out[aRow·bR+bRow, aCol·bC+bCol] = a[aRow,aCol]·b[bRow,bCol].
//
// Returns:
//   - Matrix: fresh (a.Rows·b.Rows)×(a.Cols·b.Cols) Dense.
//
// Complexity:
//   - Time O(a.r*a.c*b.r*b.c), Space same for the result.
func Kronecker(a, b Matrix) (Matrix, error) {
	// Validate operands are present.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	outRows, outCols := ad.r*bd.r, ad.c*bd.c
	out, err := NewDense(outRows, outCols)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	// Fixed traversal order over both operands.
	var aRow, aCol, bRow, bCol int
	var av float64
	for aRow = 0; aRow < ad.r; aRow++ {
		for aCol = 0; aCol < ad.c; aCol++ {
			av = ad.data[aRow*ad.c+aCol] // read a(aRow,aCol) once per block
			for bRow = 0; bRow < bd.r; bRow++ {
				for bCol = 0; bCol < bd.c; bCol++ {
					out.data[(aRow*bd.r+bRow)*outCols+(aCol*bd.c+bCol)] = av * bd.data[bRow*bd.c+bCol]
				}
			}
		}
	}

	return out, nil
}

// MatVec computes the matrix–vector product y = m · x.
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateVecLen(x, m.Cols()) BEFORE fan-out.
//   - Stage 2: per-row dot products dispatched via forEachIndex; y[i] is
//     written only by unit i (merge by index).
//
// Errors:
//   - ErrNilMatrix (nil matrix or nil vector), ErrDimensionMismatch.
//
// Determinism:
//   - Fixed j-order inside each row; disjoint output indices across units.
//
// Complexity:
//   - Time O(r*c) work spread across workerLimit goroutines, Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := d.r, d.c
	y := make([]float64, rows) // allocate exactly rows outputs

	// Per-row units: unit i owns y[i] exclusively.
	err = forEachIndex(rows, func(i int) error {
		// Vectorized dot of row i against x; both slices share length cols.
		y[i] = vek.Dot(d.data[i*cols:(i+1)*cols], x)

		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}
