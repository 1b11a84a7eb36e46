// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/internal/ctxlog"
	"github.com/katalvlaran/matcalc/matrix"
)

// Result collects everything a run produced, keyed by block name.
type Result struct {
	Matrices     map[string]*matrix.Matrix // inputs and operation results
	Determinants map[string]int64
}

// Run executes job and writes a report to w: for every operation and
// determinant a "# <kind> <name>" header followed by the display form or
// "determinant: N". The context is checked before each step; a step in
// progress is never interrupted.
//
// On failure the partial Result is returned alongside a *StepError.
func Run(ctx context.Context, job *Job, w io.Writer) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("job_dir", job.Dir)
	res := &Result{
		Matrices:     make(map[string]*matrix.Matrix, len(job.Matrices)+len(job.Operations)),
		Determinants: make(map[string]int64, len(job.Determinants)),
	}

	for _, spec := range job.Matrices {
		if err := ctx.Err(); err != nil {
			return res, &StepError{Kind: KindMatrix, Name: spec.Name, Err: err}
		}
		m := spec.Rows
		if m == nil {
			path := job.resolve(spec.File)
			logger.Debug("Loading matrix.", "name", spec.Name, "path", path)
			var err error
			if m, err = codec.ReadFile(path); err != nil {
				return res, &StepError{Kind: KindMatrix, Name: spec.Name, Err: err}
			}
		}
		res.Matrices[spec.Name] = m
	}

	for _, spec := range job.Operations {
		if err := ctx.Err(); err != nil {
			return res, &StepError{Kind: KindOperation, Name: spec.Name, Err: err}
		}
		logger.Info("Running operation.", "name", spec.Name, "op", spec.Op.String())

		out, err := matrix.Apply(spec.Op, res.Matrices[spec.Left], res.Matrices[spec.Right])
		if err != nil {
			return res, &StepError{Kind: KindOperation, Name: spec.Name, Err: err}
		}
		res.Matrices[spec.Name] = out

		if spec.Output != "" {
			if err = codec.WriteFile(job.resolve(spec.Output), out); err != nil {
				return res, &StepError{Kind: KindOperation, Name: spec.Name, Err: err}
			}
		}
		if _, err = fmt.Fprintf(w, "# %s %s\n%s", KindOperation, spec.Name, codec.Display(out)); err != nil {
			return res, &StepError{Kind: KindOperation, Name: spec.Name, Err: err}
		}
	}

	for _, spec := range job.Determinants {
		if err := ctx.Err(); err != nil {
			return res, &StepError{Kind: KindDeterminant, Name: spec.Name, Err: err}
		}
		logger.Info("Computing determinant.", "name", spec.Name, "matrix", spec.Matrix)

		det, err := matrix.Determinant(res.Matrices[spec.Matrix])
		if err != nil {
			return res, &StepError{Kind: KindDeterminant, Name: spec.Name, Err: err}
		}
		res.Determinants[spec.Name] = det

		if _, err = fmt.Fprintf(w, "# %s %s\ndeterminant: %d\n", KindDeterminant, spec.Name, det); err != nil {
			return res, &StepError{Kind: KindDeterminant, Name: spec.Name, Err: err}
		}
	}

	logger.Info("Job finished.", "operations", len(job.Operations), "determinants", len(job.Determinants))

	return res, nil
}

// RunFile loads the job at path and runs it.
func RunFile(ctx context.Context, path string, w io.Writer) (*Result, error) {
	job, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Run(ctx, job, w)
}
