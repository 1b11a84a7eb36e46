// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep values small enough that products never approach int64 overflow.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// MustMatrix BUILDS a matrix from row literals or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.FromRows(rows).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustMatrix(t testing.TB, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomMatrix FILLS an r×c matrix with deterministic values in [-span, span].
// Implementation:
//   - Stage 1: seeded rand.Rand so every run sees the same data.
//   - Stage 2: fill a row-major slice and build through matrix.New.
//
// Notes:
//   - Keep span small (≤ 9) for determinant tests so n! terms stay far from overflow.
func RandomMatrix(t testing.TB, r, c int, seed int64, span int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int64, r*c)
	for i := range vals {
		vals[i] = rng.Int63n(2*span+1) - span
	}
	m, err := matrix.New(r, c, vals)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// CompareExact CHECKS that m has exactly the values in want (shape included).
func CompareExact(t testing.TB, want [][]int64, m *matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v int64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// AssertErrorIs FAILS the test unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// referenceDeterminant is the textbook recursion that materializes every
// minor through matrix.Minor; Determinant must agree with it bit for bit.
func referenceDeterminant(t testing.TB, m *matrix.Matrix) int64 {
	t.Helper()
	if m.Rows() == 1 {
		return MustAt(t, m, 0, 0)
	}
	var det int64
	for j := 0; j < m.Cols(); j++ {
		minor, err := matrix.Minor(m, j)
		if err != nil {
			t.Fatalf("Minor(%d): %v", j, err)
		}
		sign := int64(1)
		if j%2 == 1 {
			sign = -1
		}
		det += sign * MustAt(t, m, 0, j) * referenceDeterminant(t, minor)
	}

	return det
}
