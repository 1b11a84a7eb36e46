// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Guarantee immutability: every constructor copies, no exported mutator exists.
//   - Support copy-based submatrix extraction (Induced) for Minor.
//
// AI-Hints:
//   - Kernels in this package write into a freshly allocated result's data slice
//     directly before returning it; that is the only place a buffer is ever written.
//   - Use ToRows when a caller needs a mutable [][]int64 of its own.
//
// Complexity quicksheet:
//   - New/FromRows: O(r*c) copy; At: O(1); Row: O(c); ToRows: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxInduce = "Induced" // tag for Matrix.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// elemErrorf wraps an error with a uniform Matrix context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func elemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an immutable row-major grid of int64 values.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for every exported constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Matrix never shares its buffer with callers or with other matrices.
type Matrix struct {
	r, c int     // row and column counts
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds an r×c matrix from a row-major value slice.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; values are copied.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 && len(values)==rows*cols.
//   - Stage 2: copy values into a private buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, values []int64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("New(%d,%d): %d values: %w", rows, cols, len(values), ErrInvalidDimensions)
	}
	m := alloc(rows, cols)
	copy(m.data, values) // caller keeps ownership of values

	return m, nil
}

// FromRows builds a matrix from a slice of rows, enforcing rectangularity.
// MAIN DESCRIPTION:
//   - The natural constructor for parsed data; every row must have the
//     same, non-zero, length.
//
// Implementation:
//   - Stage 1: reject empty input and an empty first row (ErrInvalidDimensions).
//   - Stage 2: scan rows once; any length != len(rows[0]) ⇒ ErrRaggedRows.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows (wrapped with the offending row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The input slices are never retained; mutate them freely afterwards.
func FromRows(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows)
		}
	}
	m := alloc(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// MustFromRows is FromRows that panics on error.
// Intended for literals in tests and examples (programmer error only).
func MustFromRows(rows [][]int64) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns a rows×cols matrix of zeros.
// Errors: ErrInvalidDimensions for non-positive dimensions.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return alloc(rows, cols), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	m := alloc(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// alloc is the single internal allocation point; make() zero-fills.
// Callers guarantee rows, cols > 0.
func alloc(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]int64, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a Shape value.
func (m *Matrix) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, elemErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i or ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, elemErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of the matrix as a slice of rows.
// Complexity: O(r*c).
func (m *Matrix) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]int64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics: "[1, 2]\n[3, 4]\n".
// For the tab/semicolon text formats use package codec.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Select rowsIdx × colsIdx (in the given order) into a new Matrix.
//
// Implementation:
//   - Stage 1: reject empty index sets (ErrInvalidDimensions).
//   - Stage 2: deterministic double loop with direct offset math; each index
//     is bounds-checked before use (ErrOutOfRange).
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)), Space the same.
//
// AI-Hints:
//   - Minor is Induced(1..r-1, all-but-j); prefer index sets over repeated
//     materialization in recursive algorithms (see Determinant).
func (m *Matrix) Induced(rowsIdx, colsIdx []int) (*Matrix, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxInduce, rp, cp, ErrInvalidDimensions)
	}
	res := alloc(rp, cp)

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Matrix.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Matrix.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}
