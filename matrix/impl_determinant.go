// SPDX-License-Identifier: MIT

// Package matrix - determinant by first-row cofactor expansion, and Minor.
//
// Purpose:
//   - Compute det(A) with the textbook Laplace expansion along row 0:
//     det(A) = Σ_j (-1)^j · A[0][j] · det(M_0j), det([[v]]) = v.
//   - Expose Minor for callers that want the materialized submatrix.
//
// Determinism:
//   - Columns are visited left to right at every level and the sign starts at
//     +1 for the first remaining column, so the accumulation order matches the
//     recursive definition exactly (same int64 results, including wrap-around).
//
// Complexity:
//   - Time O(n!) by design; there is no pivoting or LU shortcut.
//   - Space O(n^2) scratch: one column index buffer per recursion level.

package matrix

// Determinant returns det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - Naive cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m) before any work (fail fast).
//   - Stage 2: allocate one flat scratch buffer holding the column index set
//     of every recursion level (sizes n-1, n-2, ..., 1).
//   - Stage 3: recurse over (row, column-set) pairs reading straight from
//     m.data; no intermediate Matrix is built.
//
// Errors:
//   - ErrNilMatrix, *ShapeError / ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2).
//
// Notes:
//   - int64 arithmetic wraps on overflow; large entries or n > ~12 can overflow.
//   - n beyond ~11 is impractically slow; callers bound the size themselves.
//
// AI-Hints:
//   - Results equal the materializing recursion det(Minor(m, j)) for every m;
//     tests assert this against a reference built on Minor.
func Determinant(m *Matrix) (int64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	if n == 1 {
		return m.data[0], nil
	}
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}

	// levels[d] holds the column set passed to level d+1 (len n-1-d).
	levels := make([][]int, n-1)
	backing := make([]int, n*(n-1)/2)
	off := 0
	for d := 0; d < n-1; d++ {
		size := n - 1 - d
		levels[d] = backing[off : off+size : off+size]
		off += size
	}

	return cofactor(m, 0, cols, levels), nil
}

// cofactor expands the submatrix made of rows row..n-1 and the given columns.
// len(cols) == n-row; levels[row] is free scratch for the child column set.
func cofactor(m *Matrix, row int, cols []int, levels [][]int) int64 {
	base := row * m.c
	if len(cols) == 1 {
		return m.data[base+cols[0]]
	}

	var (
		det  = ZeroSum
		sign = int64(1)
		sub  = levels[row]
	)
	for j := range cols {
		// sub = cols without position j, order preserved.
		copy(sub, cols[:j])
		copy(sub[j:], cols[j+1:])

		det += sign * m.data[base+cols[j]] * cofactor(m, row+1, sub, levels)
		sign = -sign
	}

	return det
}

// Minor returns the submatrix of m without row 0 and without excludedColumn,
// preserving the relative order of the remaining rows and columns.
// MAIN DESCRIPTION:
//   - Pure, allocation-producing helper; m is never touched.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrOutOfRange when excludedColumn ∉ [0, cols).
//   - ErrInvalidDimensions when m has a single row or column (the minor would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m *Matrix, excludedColumn int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if excludedColumn < 0 || excludedColumn >= m.c {
		return nil, matrixErrorf(opMinor, elemErrorf(ctxAt, 0, excludedColumn, ErrOutOfRange))
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	rowsIdx := make([]int, 0, m.r-1)
	for i := 1; i < m.r; i++ {
		rowsIdx = append(rowsIdx, i)
	}
	colsIdx := make([]int, 0, m.c-1)
	for j := 0; j < m.c; j++ {
		if j != excludedColumn {
			colsIdx = append(colsIdx, j)
		}
	}

	res, err := m.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}
