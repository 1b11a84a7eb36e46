// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Parse/Decode/ReadFile.
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package codec

import "fmt"

// Delimiter separates values within a row.
type Delimiter rune

// Supported delimiters.
const (
	Semicolon Delimiter = ';'  // storage format
	Tab       Delimiter = '\t' // display format
)

// String returns the delimiter as a one-character string.
func (d Delimiter) String() string { return string(rune(d)) }

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter is the storage delimiter used by Parse.
	DefaultDelimiter = Semicolon

	// DefaultMinRows is the loader's "at least two lines" policy.
	DefaultMinRows = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinRowsInvalid   = "codec: WithMinRows: n must be >= 1"
	panicDelimiterInvalid = "codec: WithDelimiter: %q cannot separate integer values"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	delimiter Delimiter
	minRows   int
	trimSpace bool
}

// WithDelimiter parses with d instead of ';'.
// Panics if d is a newline, a digit, or a sign character.
func WithDelimiter(d Delimiter) Option {
	switch {
	case d == '\n' || d == '\r' || d == '-' || d == '+' || (d >= '0' && d <= '9'):
		panic(fmt.Sprintf(panicDelimiterInvalid, rune(d)))
	}

	return func(o *options) { o.delimiter = d }
}

// WithMinRows overrides the minimum row count (DefaultMinRows).
// Panics if n < 1.
func WithMinRows(n int) Option {
	if n < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *options) { o.minRows = n }
}

// WithTrimSpace strips blanks around every token before parsing, so
// " 1 ; 2" reads as 1 and 2. Off by default.
func WithTrimSpace() Option {
	return func(o *options) { o.trimSpace = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		delimiter: DefaultDelimiter,
		minRows:   DefaultMinRows,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
