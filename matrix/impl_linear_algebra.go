// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and product kernels over Matrix:
// addition, subtraction and multiplication. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels used across the package.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Determinant and Minor live in impl_determinant.go.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for products and cofactor sums.
const ZeroSum int64 = 0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opApply       = "Apply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not touched.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result r×c.
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Behavior highlights:
//   - Deterministic loop order; single result allocation.
//
// Errors:
//   - ErrNilMatrix, *DimensionError (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as an int64 avoids an extra branch inside the hot loop.
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := alloc(a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix (nil input), *DimensionError / ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; the result is always freshly allocated.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Matrix.
// Same contract as Add.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, accumulating into C's row.
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new C with shape (r × c), C[i][j] = Σ_k A[i][k]*B[k][j].
//
// Errors:
//   - ErrNilMatrix (nil input), *DimensionError (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - int64 products and sums wrap on overflow; no detection is performed.
//
// AI-Hints:
//   - Multiplying by Identity(n) on either side returns an equal matrix.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := alloc(aRows, bCols)

	var (
		i, j, k                            int
		av                                 int64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}
