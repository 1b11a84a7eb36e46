// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Parse reads a matrix from delimited text.
//
// Implementation:
//   - Stage 1: split into lines; a trailing empty line (final newline) is
//     dropped, a trailing '\r' is stripped from every line.
//   - Stage 2: split each line on the delimiter, dropping trailing empty
//     tokens ("1;2;" holds two values); every line must yield as many tokens
//     as the first (ErrRaggedRows), and there must be at least minRows lines
//     (ErrTooFewRows).
//   - Stage 3: parse each token as a base-10 int64 (ErrMalformedValue names
//     the line). Tokens are taken verbatim: " 1" is malformed unless
//     WithTrimSpace is given.
//
// Complexity: O(len(text)).
func Parse(text string, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts)
	lines := splitLines(text)
	sep := o.delimiter.String()

	tokens := make([][]string, len(lines))
	for i, line := range lines {
		tokens[i] = splitTokens(line, sep)
		if len(tokens[i]) != len(tokens[0]) {
			return nil, &ParseError{
				Line:    i + 1,
				Content: line,
				Detail:  fmt.Sprintf("%d values, want %d", len(tokens[i]), len(tokens[0])),
				Err:     ErrRaggedRows,
			}
		}
	}
	if len(lines) < o.minRows {
		return nil, &ParseError{
			Detail: fmt.Sprintf("got %d, want at least %d", len(lines), o.minRows),
			Err:    ErrTooFewRows,
		}
	}

	cols := len(tokens[0])
	if cols == 0 {
		return nil, &ParseError{Line: 1, Content: lines[0], Detail: "no values", Err: ErrMalformedValue}
	}
	values := make([]int64, 0, len(lines)*cols)
	for i, row := range tokens {
		for _, tok := range row {
			if o.trimSpace {
				tok = strings.TrimSpace(tok)
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, &ParseError{
					Line:    i + 1,
					Content: lines[i],
					Detail:  fmt.Sprintf("token %q", tok),
					Err:     ErrMalformedValue,
				}
			}
			values = append(values, v)
		}
	}

	return matrix.New(len(lines), cols, values)
}

// splitLines splits on '\n', strips '\r', and drops one trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

// splitTokens splits line on sep and drops trailing empty tokens. A line
// without sep yields itself, so "" is one (malformed) empty token.
func splitTokens(line, sep string) []string {
	if !strings.Contains(line, sep) {
		return []string{line}
	}
	toks := strings.Split(line, sep)
	n := len(toks)
	for n > 0 && toks[n-1] == "" {
		n--
	}

	return toks[:n]
}

// Serialize renders m with one line per row, values joined by delim, no
// trailing delimiter, and '\n' after every row. A nil m renders as "".
// Complexity: O(r*c).
func Serialize(m *matrix.Matrix, delim Delimiter) string {
	var b strings.Builder
	writeRows(&b, m, delim)

	return b.String()
}

// Display renders m in the tab-separated display format.
func Display(m *matrix.Matrix) string { return Serialize(m, Tab) }

// Decode reads all of r and parses it.
func Decode(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	return Parse(string(data), opts...)
}

// Encode writes Serialize(m, delim) to w.
func Encode(w io.Writer, m *matrix.Matrix, delim Delimiter) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	var b strings.Builder
	writeRows(&b, m, delim)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return nil
}

func writeRows(b *strings.Builder, m *matrix.Matrix, delim Delimiter) {
	if m == nil {
		return
	}
	var buf []byte
	for _, row := range m.ToRows() {
		for j, v := range row {
			if j > 0 {
				b.WriteRune(rune(delim))
			}
			buf = strconv.AppendInt(buf[:0], v, 10)
			b.Write(buf)
		}
		b.WriteByte('\n')
	}
}
