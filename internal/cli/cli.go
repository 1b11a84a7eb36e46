// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/matcalc/internal/logging"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitRuntime = 1 // I/O and other runtime failures
	ExitUsage   = 2 // bad flags, unknown command, wrong argument count
	ExitParse   = 3 // malformed matrix text or job file
	ExitShape   = 4 // dimension mismatch or non-square determinant
)

// ExitError is an error that carries the exit code for main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	LogLevel  string
	LogFormat string
	Output    string // -o: also save the result here
	Command   string
	Args      []string
}

const usageText = `
matcalc - integer matrix calculator.

Usage:
  matcalc [options] <command> [arguments]

Commands:
  show FILE            print a matrix
  add FILE1 FILE2      element-wise sum
  sub FILE1 FILE2      element-wise difference
  mul FILE1 FILE2      matrix product
  det FILE             determinant of a square matrix
  run JOB.hcl          execute a batch job
  samples DIR          write matrix1.csv and matrix2.csv into DIR
  shell                interactive two-slot workspace on stdin

Matrix files hold one row per line, values separated by ';'.
-o applies to show, add, sub and mul only.

Options:
`

// Parse processes command-line arguments. It returns the Config, a boolean
// telling the caller to exit cleanly (help was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	outputFlag := flagSet.String("o", "", "Also save the computed matrix to this file (semicolon format).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	if _, err := logging.ParseLevel(*logLevelFlag); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	format, err := logging.ValidateFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg := &Config{
		LogLevel:  *logLevelFlag,
		LogFormat: format,
		Output:    *outputFlag,
		Command:   flagSet.Arg(0),
		Args:      flagSet.Args()[1:],
	}
	if err := cfg.validate(); err != nil {
		return nil, false, err
	}
	slog.Debug("CLI parser finished successfully.", "command", cfg.Command)

	return cfg, false, nil
}

// arity is the number of positional arguments each command takes.
var arity = map[string]int{
	"show":    1,
	"add":     2,
	"sub":     2,
	"mul":     2,
	"det":     1,
	"run":     1,
	"samples": 1,
	"shell":   0,
}

// savesResult lists the commands that honor -o.
var savesResult = map[string]bool{"show": true, "add": true, "sub": true, "mul": true}

func (c *Config) validate() error {
	n, ok := arity[c.Command]
	if !ok {
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unknown command %q", c.Command)}
	}
	if len(c.Args) != n {
		return &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("%s: want %d argument(s), got %d", c.Command, n, len(c.Args)),
		}
	}
	if c.Output != "" && !savesResult[c.Command] {
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("%s: -o is not supported", c.Command)}
	}

	return nil
}
