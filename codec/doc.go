// SPDX-License-Identifier: MIT

// Package codec converts between delimited text and matrix.Matrix.
//
// Storage format: one row per line, values separated by ';', no header,
// every line with the same number of values, and at least two lines
// (DefaultMinRows). Example:
//
//	1;2;3
//	4;5;6
//
// Display format: the same layout with tab separators. Both formats end
// every row, including the last, with '\n'.
//
// Parse validates structure before values: ragged rows and the row-count
// policy are reported before malformed tokens, so a file that is not a
// matrix at all is rejected as such. All failures are *ParseError values
// that unwrap to ErrMalformedValue, ErrRaggedRows or ErrTooFewRows.
//
// The two-row minimum is a loader policy, not a mathematical rule: a 1×1
// matrix is valid for the engine but not accepted from a file unless the
// caller opts in with WithMinRows(1).
//
// Round trip: Parse(Serialize(m, Semicolon)) equals m for every m with at
// least two rows.
package codec
