// SPDX-License-Identifier: MIT

// Package matrix: small domain types shared by the engine and its callers.
// This file contains ONLY value types (Shape, Op); the Matrix itself lives in
// impl_dense.go, errors in errors.go.
package matrix

import (
	"fmt"
	"strings"
)

// Shape is a (rows, cols) pair. It is comparable and prints as "RxC".
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC" (e.g. "2x3").
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// Op selects a binary matrix operation for Apply.
// The zero value is not a valid operation.
type Op int

// Binary operation kinds.
const (
	OpAdd Op = iota + 1 // element-wise a + b
	OpSub               // element-wise a - b
	OpMul               // matrix product a × b
)

// opNames maps Op to its canonical lower-case name (used by ParseOp and String).
var opNames = map[Op]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
}

// opAliases lists accepted spellings for ParseOp beyond the canonical names.
var opAliases = map[string]Op{
	"add":      OpAdd,
	"sum":      OpAdd,
	"+":        OpAdd,
	"sub":      OpSub,
	"subtract": OpSub,
	"diff":     OpSub,
	"-":        OpSub,
	"mul":      OpMul,
	"multiply": OpMul,
	"product":  OpMul,
	"*":        OpMul,
}

// String returns the canonical name ("add", "sub", "mul") or "Op(N)".
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp resolves a case-insensitive operation name or symbol.
// Returns ErrUnknownOp for anything else.
func ParseOp(s string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}
