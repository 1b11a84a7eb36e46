// SPDX-License-Identifier: MIT

// Package matrix is the arithmetic engine of matcalc: an immutable,
// row-major matrix of int64 values and pure operations over it.
//
// The matrix package provides:
//
//   - Matrix: a rectangular R×C grid (R,C ≥ 1) built by New, FromRows,
//     Zeros or Identity. Constructors copy their input; nothing mutates a
//     Matrix after construction.
//   - Add, Sub, Mul: shape-checked arithmetic returning fresh matrices.
//   - Determinant: first-row cofactor expansion (naive O(n!)), computed over
//     column index sets into the original buffer.
//   - Minor: materialized submatrix without row 0 and one column.
//   - Op / Apply: a tagged enum for dispatching binary operations by kind.
//
// Shape checks always run before any allocation or arithmetic; a failing
// call never yields a partial result. Errors are typed (*DimensionError,
// *ShapeError) and unwrap to package sentinels for errors.Is.
//
// Numeric limits: all arithmetic is int64 with Go's wrap-around semantics.
// Mul and Determinant do not detect overflow; inputs whose products exceed
// the int64 range produce wrapped results.
//
// All functions are safe for concurrent use on shared inputs because no
// function writes to an existing Matrix.
package matrix
