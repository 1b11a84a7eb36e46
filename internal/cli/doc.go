// SPDX-License-Identifier: MIT

// Package cli parses matcalc's command line, runs the selected command and
// maps failures onto process exit codes.
package cli
