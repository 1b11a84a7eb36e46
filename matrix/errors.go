// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed shape errors.
// All kernels return these sentinels (possibly wrapped with an operation tag)
// and tests MUST check them via errors.Is / errors.As. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", err) via
// matrixErrorf; callers still match with errors.Is / errors.As.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimension -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that the value count does not fill rows×cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("matrix: rows have differing lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownOp is returned by ParseOp and Apply for an unrecognized operation kind.
	ErrUnknownOp = errors.New("matrix: unknown operation")
)

// DimensionError reports the two conflicting shapes of a binary operation.
// Expected is the shape the right operand had to have; Actual is what it had.
// It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Expected Shape
	Actual   Shape
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrDimensionMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ShapeError reports an operand that is not square. It unwraps to ErrNonSquare.
type ShapeError struct {
	Shape Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNonSquare, e.Shape)
}

// Unwrap exposes ErrNonSquare to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrNonSquare }
