package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{},
		[]string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Determinant(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "m.csv")
	require.NoError(t, os.WriteFile(path, []byte("1;2;3\n4;5;6\n6;10;4\n"), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"det", path})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "determinant: 30\n", out.String())
}
