// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/matcalc/batch"
	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/internal/ctxlog"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/session"
)

// App binds a Config to its streams. Results go to Out, log records to Log.
type App struct {
	In  io.Reader
	Out io.Writer
	Log io.Writer
}

// Run executes cfg.Command. Any failure is returned as an *ExitError.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, a.Log)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "command", cfg.Command)

	return asExitError(a.dispatch(ctx, logger, cfg))
}

func (a *App) dispatch(ctx context.Context, logger *slog.Logger, cfg *Config) error {
	switch cfg.Command {
	case "show":
		return a.show(cfg)
	case "add", "sub", "mul":
		op, err := matrix.ParseOp(cfg.Command)
		if err != nil {
			return err
		}
		return a.binary(ctx, logger, cfg, op)
	case "det":
		return a.det(ctx, logger, cfg)
	case "run":
		_, err := batch.RunFile(ctx, cfg.Args[0], a.Out)
		return err
	case "samples":
		return a.samples(ctx, cfg.Args[0])
	case "shell":
		return newShell(session.New(session.WithLogger(logger)), a.In, a.Out).run(ctx)
	default:
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}
}

func (a *App) show(cfg *Config) error {
	m, err := codec.ReadFile(cfg.Args[0])
	if err != nil {
		return err
	}
	if _, err = io.WriteString(a.Out, codec.Display(m)); err != nil {
		return err
	}
	if cfg.Output != "" {
		return codec.WriteFile(cfg.Output, m)
	}

	return nil
}

func (a *App) binary(ctx context.Context, logger *slog.Logger, cfg *Config, op matrix.Op) error {
	ws := session.New(session.WithLogger(logger))
	if _, err := ws.Load(ctx, session.Slot1, cfg.Args[0]); err != nil {
		return err
	}
	if _, err := ws.Load(ctx, session.Slot2, cfg.Args[1]); err != nil {
		return err
	}
	res, err := ws.Apply(ctx, op)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(a.Out, codec.Display(res)); err != nil {
		return err
	}
	if cfg.Output != "" {
		return ws.SaveResult(ctx, cfg.Output)
	}

	return nil
}

func (a *App) det(ctx context.Context, logger *slog.Logger, cfg *Config) error {
	ws := session.New(session.WithLogger(logger))
	if _, err := ws.Load(ctx, session.Slot1, cfg.Args[0]); err != nil {
		return err
	}
	det, err := ws.Determinant(ctx, session.Slot1)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.Out, "determinant: %d\n", det)

	return err
}

// Sample matrices written by the samples command.
var (
	sampleMatrix1 = matrix.MustFromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {6, 10, 4}})
	sampleMatrix2 = matrix.MustFromRows([][]int64{{9, 8, 7}, {6, 10, 4}, {3, 20, 1}})
)

func (a *App) samples(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, m := range map[string]*matrix.Matrix{
		"matrix1.csv": sampleMatrix1,
		"matrix2.csv": sampleMatrix2,
	} {
		path := filepath.Join(dir, name)
		if err := codec.WriteFile(path, m); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Info("Sample written.", "path", path)
	}
	_, err := fmt.Fprintf(a.Out, "wrote %s and %s\n",
		filepath.Join(dir, "matrix1.csv"), filepath.Join(dir, "matrix2.csv"))

	return err
}
