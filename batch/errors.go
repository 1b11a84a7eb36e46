// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJob marks a job file that cannot be parsed, decoded or validated.
	ErrInvalidJob = errors.New("batch: invalid job")

	// ErrDuplicateName marks two blocks sharing a name.
	ErrDuplicateName = errors.New("batch: duplicate name")

	// ErrUnknownName marks a reference to a name not defined before its use.
	ErrUnknownName = errors.New("batch: unknown name")

	// ErrMatrixSource marks a matrix block with neither or both of file and rows.
	ErrMatrixSource = errors.New("batch: matrix needs exactly one of file or rows")
)

// StepError reports which block failed. Err is never nil.
type StepError struct {
	Kind string // "matrix", "operation" or "determinant"
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("batch: %s %q: %v", e.Kind, e.Name, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *StepError) Unwrap() error { return e.Err }

// jobError marks err as a job definition problem while keeping it matchable.
func jobError(kind, name string, err error) error {
	return &StepError{Kind: kind, Name: name, Err: fmt.Errorf("%w: %w", ErrInvalidJob, err)}
}
