// SPDX-License-Identifier: MIT

// Package logging builds the process logger from the -log-level and
// -log-format flag values.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Accepted flag values.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps "debug", "info", "warn" or "error" (case-insensitive) to a
// slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
}

// ValidateFormat accepts "text" or "json" (case-insensitive) and returns the
// normalized value.
func ValidateFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f != FormatText && f != FormatJSON {
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
	}

	return f, nil
}

// New creates an isolated logger writing to w. It never touches slog.Default.
// Unknown levels fall back to info, unknown formats to text; callers that
// need strictness validate with ParseLevel/ValidateFormat first.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
