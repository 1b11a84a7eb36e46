// SPDX-License-Identifier: MIT

// Command matcalc loads integer matrices from semicolon-delimited files and
// adds, subtracts, multiplies them or computes determinants.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/matcalc/internal/cli"
)

// main is the entrypoint for the matcalc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitRuntime)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, inR io.Reader, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	app := &cli.App{In: inR, Out: outW, Log: logW}

	return app.Run(ctx, cfg)
}
