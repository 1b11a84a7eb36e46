package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/batch"
	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/session"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		args       []string
		expectExit bool
		expectCode int
		expected   *Config
	}{
		{
			name: "all flags",
			args: []string{"-log-level=debug", "--log-format=JSON", "-o", "out.csv", "mul", "a.csv", "b.csv"},
			expected: &Config{
				LogLevel: "debug", LogFormat: "json", Output: "out.csv",
				Command: "mul", Args: []string{"a.csv", "b.csv"},
			},
		},
		{
			name: "defaults",
			args: []string{"det", "m.csv"},
			expected: &Config{
				LogLevel: "info", LogFormat: "text",
				Command: "det", Args: []string{"m.csv"},
			},
		},
		{
			name:     "shell takes no arguments",
			args:     []string{"shell"},
			expected: &Config{LogLevel: "info", LogFormat: "text", Command: "shell", Args: []string{}},
		},
		{name: "help", args: []string{"-h"}, expectExit: true},
		{name: "no command prints usage", args: nil, expectExit: true},
		{name: "unknown flag", args: []string{"-nope"}, expectCode: ExitUsage},
		{name: "unknown command", args: []string{"transpose", "m.csv"}, expectCode: ExitUsage},
		{name: "wrong arity", args: []string{"add", "a.csv"}, expectCode: ExitUsage},
		{name: "bad level", args: []string{"-log-level=loud", "show", "m.csv"}, expectCode: ExitUsage},
		{name: "output with det", args: []string{"-o", "d.csv", "det", "m.csv"}, expectCode: ExitUsage},
		{name: "output with run", args: []string{"-o", "r.csv", "run", "job.hcl"}, expectCode: ExitUsage},
		{name: "output with samples", args: []string{"-o", "s.csv", "samples", "dir"}, expectCode: ExitUsage},
		{name: "output with shell", args: []string{"-o", "x.csv", "shell"}, expectCode: ExitUsage},
		{name: "bad format", args: []string{"-log-format=xml", "show", "m.csv"}, expectCode: ExitUsage},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			var out bytes.Buffer

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, &out)

			// --- Assert ---
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			if tc.expectExit {
				require.Contains(t, out.String(), "Usage:")
				return
			}
			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{&ExitError{Code: ExitUsage, Message: "x"}, ExitUsage},
		{fmt.Errorf("wrap: %w", codec.ErrMalformedValue), ExitParse},
		{&codec.ParseError{Err: codec.ErrRaggedRows}, ExitParse},
		{codec.ErrTooFewRows, ExitParse},
		{batch.ErrInvalidJob, ExitParse},
		{&matrix.DimensionError{}, ExitShape},
		{&matrix.ShapeError{}, ExitShape},
		{session.ErrSlotEmpty, ExitRuntime},
		{os.ErrNotExist, ExitRuntime},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}

// appFixture runs one command against files in a temp dir.
type appFixture struct {
	dir string
	out bytes.Buffer
	log bytes.Buffer
}

func newFixture(t *testing.T, files map[string]string) *appFixture {
	t.Helper()
	f := &appFixture{dir: t.TempDir()}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), []byte(body), 0o600))
	}

	return f
}

func (f *appFixture) path(name string) string { return filepath.Join(f.dir, name) }

func (f *appFixture) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	cfg, shouldExit, err := Parse(args, &f.out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	app := &App{In: strings.NewReader(stdin), Out: &f.out, Log: &f.log}

	return app.Run(context.Background(), cfg)
}

func TestApp_BinaryCommands(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"add": "10\t10\t10\n10\t15\t10\n9\t30\t5\n",
		"sub": "-8\t-6\t-4\n-2\t-5\t2\n3\t-10\t3\n",
		"mul": "30\t88\t18\n84\t202\t54\n126\t228\t86\n",
	}
	for cmd, want := range cases {
		cmd, want := cmd, want
		t.Run(cmd, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			f := newFixture(t, map[string]string{
				"matrix1.csv": "1;2;3\n4;5;6\n6;10;4\n",
				"matrix2.csv": "9;8;7\n6;10;4\n3;20;1\n",
			})

			// --- Act ---
			err := f.run(t, "", "-o", f.path("out.csv"), cmd, f.path("matrix1.csv"), f.path("matrix2.csv"))

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, want, f.out.String())
			saved, err := codec.ReadFile(f.path("out.csv"))
			require.NoError(t, err)
			require.Equal(t, want, codec.Display(saved))
			require.Contains(t, f.log.String(), "apply operation")
		})
	}
}

func TestApp_ErrorCodes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{
		"square.csv": "1;2\n3;4\n",
		"wide.csv":   "1;2;3\n4;5;6\n",
		"bad.csv":    "1;2\n3;four\n",
		"job.hcl":    `determinant "d" { matrix = "missing" }`,
	})

	cases := []struct {
		args []string
		code int
	}{
		{[]string{"add", f.path("square.csv"), f.path("wide.csv")}, ExitShape},
		{[]string{"det", f.path("wide.csv")}, ExitShape},
		{[]string{"show", f.path("bad.csv")}, ExitParse},
		{[]string{"mul", f.path("bad.csv"), f.path("square.csv")}, ExitParse},
		{[]string{"run", f.path("job.hcl")}, ExitParse},
		{[]string{"show", f.path("absent.csv")}, ExitRuntime},
		{[]string{"run", f.path("absent.hcl")}, ExitRuntime},
	}
	for _, tc := range cases {
		err := f.run(t, "", tc.args...)
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "%v", tc.args)
		require.Equal(t, tc.code, exitErr.Code, "%v: %v", tc.args, err)
	}
}

func TestApp_ShowAndSamples(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	sampleDir := f.path("samples")

	require.NoError(t, f.run(t, "", "samples", sampleDir))
	require.Contains(t, f.out.String(), "matrix1.csv")

	raw, err := os.ReadFile(filepath.Join(sampleDir, "matrix2.csv"))
	require.NoError(t, err)
	require.Equal(t, "9;8;7\n6;10;4\n3;20;1\n", string(raw))

	f.out.Reset()
	require.NoError(t, f.run(t, "", "show", filepath.Join(sampleDir, "matrix1.csv")))
	require.Equal(t, "1\t2\t3\n4\t5\t6\n6\t10\t4\n", f.out.String())
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{
		"a.csv": "2;0\n0;2\n",
		"job.hcl": `
matrix "a" { file = "a.csv" }
matrix "b" { rows = [[1, 1], [1, 1]] }
operation "p" {
  op    = "mul"
  left  = "a"
  right = "b"
}
determinant "d" { matrix = "a" }
`,
	})

	require.NoError(t, f.run(t, "", "run", f.path("job.hcl")))
	require.Equal(t, "# operation p\n2\t2\n2\t2\n# determinant d\ndeterminant: 4\n", f.out.String())
}

func TestApp_Shell(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newFixture(t, map[string]string{
		"m1.csv":  "1;2\n3;4\n",
		"m2.csv":  "5;6\n7;8\n",
		"bad.csv": "1;2\n3\n",
	})
	script := strings.Join([]string{
		"add",
		"load 1 " + f.path("m1.csv"),
		"load 2 " + f.path("bad.csv"),
		"load 2 " + f.path("m2.csv"),
		"",
		"show 2",
		"mul",
		"det 1",
		"save result " + f.path("r.csv"),
		"load 3 " + f.path("m1.csv"),
		"frobnicate",
		"quit",
		"show 1",
	}, "\n")

	// --- Act ---
	err := f.run(t, script, "shell")

	// --- Assert ---
	require.NoError(t, err)
	got := f.out.String()
	require.Contains(t, got, "error: session: add: session: must load matrices\n")
	require.Contains(t, got, "slot 1: 2x2 loaded\n")
	require.Contains(t, got, "error: session: load slot 2: codec: rows have differing column counts")
	require.Contains(t, got, "slot 2: 2x2 loaded\n5\t6\n7\t8\n")
	require.Contains(t, got, "19\t22\n43\t50\n")
	require.Contains(t, got, "determinant: -2\n")
	require.Contains(t, got, "session: slot must be 1 or 2")
	require.Contains(t, got, `unknown command "frobnicate"`)
	// Nothing after quit runs.
	require.NotContains(t, got, "1\t2\n3\t4\n")

	raw, err := os.ReadFile(f.path("r.csv"))
	require.NoError(t, err)
	require.Equal(t, "19;22\n43;50\n", string(raw))
}
