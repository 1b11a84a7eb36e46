// Package matcalc is a small calculator for integer matrices stored as
// semicolon-delimited text.
//
// 🚀 What is in the box?
//
//   - Engine: add, subtract, multiply and the cofactor determinant over int64
//   - Codec: parse and write the "1;2;3" row format, tab-separated display
//   - Workspace: two operand slots plus the last result, safe for concurrent use
//   - Batch: HCL job files naming matrices, operations and determinants
//   - CLI: matcalc show|add|sub|mul|det|run|samples|shell
//
// Packages:
//
//	matrix/   - immutable Matrix, Add/Sub/Mul, Determinant, Minor, Op dispatch
//	codec/    - Parse/Serialize, ReadFile (mmap) and WriteFile
//	session/  - Workspace with Slot1/Slot2 and the current result
//	batch/    - LoadFile/Parse/Run for .hcl jobs
//	cmd/matcalc - the command-line entry point
//
// Quick example:
//
//	a, _ := codec.Parse("1;2\n3;4\n")
//	b, _ := codec.Parse("5;6\n7;8\n")
//	p, _ := matrix.Mul(a, b)
//	fmt.Print(codec.Display(p))
//	// 19	22
//	// 43	50
//
//	d, _ := matrix.Determinant(a) // -2
//
// Limitations:
//
//   - Arithmetic is int64 and wraps silently on overflow.
//   - Determinant is the O(n!) cofactor expansion; it is meant for small matrices.
package matcalc
