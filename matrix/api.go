// SPDX-License-Identifier: MIT
// Package matrix - public API facades and operation dispatch.
//
// Purpose:
//   - Provide thin entry points for discoverability (Sum/Diff/Product/Det).
//   - Dispatch binary operations by kind (Apply) with a plain switch instead
//     of function values looked up by name.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "fmt"

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// Det is an alias for Determinant.
// Complexity: O(n!).
func Det(m *Matrix) (int64, error) { return Determinant(m) }

// IdentityLike returns I with dimension = Rows(m); requires a square m.
// Complexity: O(n^2).
//
// AI-Hints: Handy as the neutral element in Mul round-trip tests.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}

// Apply runs the binary operation op on (a, b).
// Implementation:
//   - Stage 1: switch on the tagged kind; unknown kinds ⇒ ErrUnknownOp.
//   - Stage 2: delegate to the canonical kernel (which validates shapes).
//
// Errors:
//   - ErrUnknownOp, plus whatever the selected kernel returns.
//
// Complexity: that of the selected kernel.
func Apply(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	default:
		return nil, matrixErrorf(opApply, fmt.Errorf("%w: %s", ErrUnknownOp, op))
	}
}
