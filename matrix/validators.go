// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return typed errors (*DimensionError, *ShapeError) or wrapped sentinels
//    so call sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or *DimensionError{Expected: a.Shape(), Actual: b.Shape()}.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels.
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return &DimensionError{Expected: a.Shape(), Actual: b.Shape()}
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Return: nil or *ShapeError. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.r != m.c {
		return &ShapeError{Shape: m.Shape()}
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, *DimensionError.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, *ShapeError.
func ValidateSquareNonNil(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// On mismatch the *DimensionError carries Expected = (a.Cols × b.Cols), the
// shape b would need, and Actual = b.Shape().
// Errors: ErrNilMatrix, *DimensionError.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &DimensionError{
			Expected: Shape{Rows: a.c, Cols: b.c},
			Actual:   b.Shape(),
		}
	}

	return nil
}
