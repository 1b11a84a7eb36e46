// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// benchSizes are the matrix sizes to benchmark the O(n^2)/O(n^3) kernels.
var benchSizes = []int{32, 128, 256}

// detSizes stay small: Determinant is O(n!).
var detSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkI int64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomMatrix(b, n, n, 1337, 1000)
			B := RandomMatrix(b, n, n, 4242, 1000)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomMatrix(b, n, n, 11, 1000)
			B := RandomMatrix(b, n, n, 22, 1000)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Diff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomMatrix(b, n, n, 5, 100)
			B := RandomMatrix(b, n, n, 6, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomMatrix(b, n, n, 77, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = d
			}
		})
	}
}

// BenchmarkDeterminant_MinorRecursion measures the materializing recursion
// for comparison with the index-set expansion above.
func BenchmarkDeterminant_MinorRecursion(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomMatrix(b, n, n, 77, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = referenceDeterminant(b, A)
			}
		})
	}
}
