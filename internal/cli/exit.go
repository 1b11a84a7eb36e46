// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/katalvlaran/matcalc/batch"
	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/matrix"
)

// ExitCode classifies err: nil is ExitOK, an *ExitError keeps its code,
// parse failures give ExitParse, shape failures ExitShape, anything else
// ExitRuntime.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, codec.ErrMalformedValue),
		errors.Is(err, codec.ErrRaggedRows),
		errors.Is(err, codec.ErrTooFewRows),
		errors.Is(err, batch.ErrInvalidJob):
		return ExitParse
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrNonSquare):
		return ExitShape
	default:
		return ExitRuntime
	}
}

// asExitError wraps err into an *ExitError with its classified code.
func asExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	return &ExitError{Code: ExitCode(err), Message: err.Error()}
}
