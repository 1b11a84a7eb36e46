// SPDX-License-Identifier: MIT

// Package batch runs matrix jobs described in HCL files.
//
// A job declares named matrices, binary operations over them and
// determinants:
//
//	matrix "a" { file = "a.csv" }
//	matrix "b" { rows = [[1, 2], [3, 4]] }
//
//	operation "s" {
//	  op     = "add"
//	  left   = "a"
//	  right  = "b"
//	  output = "s.csv" # optional
//	}
//
//	determinant "d" { matrix = "s" }
//
// Blocks run by kind (matrices, then operations, then determinants) and in
// declaration order within a kind. An operation result is addressable by its
// name from later operations and from any determinant. Relative paths resolve
// against the directory holding the job file.
package batch
