// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedValue marks a token that is not a base-10 int64.
	ErrMalformedValue = errors.New("codec: malformed value")

	// ErrRaggedRows marks a line whose value count differs from the first line's.
	ErrRaggedRows = errors.New("codec: rows have differing column counts")

	// ErrTooFewRows marks input with fewer rows than the configured minimum.
	ErrTooFewRows = errors.New("codec: too few rows")
)

// ParseError describes why text could not be parsed as a matrix.
//   - Line is 1-based; 0 when the failure is not tied to a single line.
//   - Content is the offending line as read (without the line terminator).
//   - Err is one of ErrMalformedValue, ErrRaggedRows, ErrTooFewRows.
type ParseError struct {
	Line    int
	Content string
	Detail  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d: %q", msg, e.Line, e.Content)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
