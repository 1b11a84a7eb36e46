// SPDX-License-Identifier: MIT

// Package session holds the two operand slots a user works with, together
// with the last computed result.
//
// A Workspace is the only mutable state in matcalc. Every action (load, apply,
// determinant, save) is logged at Info with the workspace id; failures are
// logged at Warn and never change what is already loaded.
//
// Workspace is safe for concurrent use. Matrices are immutable, so values
// returned by accessors may be shared freely.
package session
