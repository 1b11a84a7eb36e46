// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/matcalc/matrix"
)

// Block kinds, also used as output headers and in StepError.Kind.
const (
	KindMatrix      = "matrix"
	KindOperation   = "operation"
	KindDeterminant = "determinant"
)

// Job is a decoded and validated job file.
type Job struct {
	// Dir is the base for relative file and output paths.
	Dir string

	Matrices     []MatrixSpec
	Operations   []OperationSpec
	Determinants []DeterminantSpec
}

// MatrixSpec defines a named input: either File or Rows is set.
type MatrixSpec struct {
	Name string
	File string
	Rows *matrix.Matrix
}

// OperationSpec computes Left Op Right; Output, when set, is written in the
// storage format.
type OperationSpec struct {
	Name   string
	Op     matrix.Op
	Left   string
	Right  string
	Output string
}

// DeterminantSpec computes the determinant of the named matrix.
type DeterminantSpec struct {
	Name   string
	Matrix string
}

// hclJobFile is the top-level structure of a job file for decoding.
type hclJobFile struct {
	Matrices     []*hclMatrix      `hcl:"matrix,block"`
	Operations   []*hclOperation   `hcl:"operation,block"`
	Determinants []*hclDeterminant `hcl:"determinant,block"`
}

type hclMatrix struct {
	Name string         `hcl:"name,label"`
	File *string        `hcl:"file,optional"`
	Rows hcl.Expression `hcl:"rows,optional"`
}

type hclOperation struct {
	Name   string  `hcl:"name,label"`
	Op     string  `hcl:"op"`
	Left   string  `hcl:"left"`
	Right  string  `hcl:"right"`
	Output *string `hcl:"output,optional"`
}

type hclDeterminant struct {
	Name   string `hcl:"name,label"`
	Matrix string `hcl:"matrix"`
}

// rowsType is what an inline rows literal must convert to.
var rowsType = cty.List(cty.List(cty.Number))

// LoadFile parses and validates the job at path. Dir is set to path's directory.
// A file that cannot be read is an I/O failure, not an invalid job.
func LoadFile(path string) (*Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read job: %w", err)
	}
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidJob, path, diags)
	}

	return decode(f, filepath.Dir(path))
}

// Parse parses and validates job source held in memory. filename is used in
// diagnostics only; relative paths resolve against dir.
func Parse(src []byte, filename, dir string) (*Job, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidJob, filename, diags)
	}

	return decode(f, dir)
}

func decode(f *hcl.File, dir string) (*Job, error) {
	var raw hclJobFile
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode: %w", ErrInvalidJob, diags)
	}

	job := &Job{Dir: dir}
	for _, b := range raw.Matrices {
		spec, err := decodeMatrix(b)
		if err != nil {
			return nil, err
		}
		job.Matrices = append(job.Matrices, spec)
	}
	for _, b := range raw.Operations {
		op, err := matrix.ParseOp(b.Op)
		if err != nil {
			return nil, jobError(KindOperation, b.Name, err)
		}
		spec := OperationSpec{Name: b.Name, Op: op, Left: b.Left, Right: b.Right}
		if b.Output != nil {
			spec.Output = *b.Output
		}
		job.Operations = append(job.Operations, spec)
	}
	for _, b := range raw.Determinants {
		job.Determinants = append(job.Determinants, DeterminantSpec{Name: b.Name, Matrix: b.Matrix})
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// decodeMatrix resolves the file/rows alternative of a matrix block.
func decodeMatrix(b *hclMatrix) (MatrixSpec, error) {
	spec := MatrixSpec{Name: b.Name}

	rowsVal := cty.NullVal(cty.DynamicPseudoType)
	if b.Rows != nil {
		v, diags := b.Rows.Value(nil)
		if diags.HasErrors() {
			return spec, jobError(KindMatrix, b.Name, diags)
		}
		rowsVal = v
	}

	hasFile := b.File != nil
	hasRows := !rowsVal.IsNull()
	if hasFile == hasRows {
		return spec, jobError(KindMatrix, b.Name, ErrMatrixSource)
	}
	if hasFile {
		spec.File = *b.File
		return spec, nil
	}

	m, err := rowsFromCty(rowsVal)
	if err != nil {
		return spec, jobError(KindMatrix, b.Name, err)
	}
	spec.Rows = m

	return spec, nil
}

// rowsFromCty converts a list-of-lists literal into a Matrix.
func rowsFromCty(v cty.Value) (*matrix.Matrix, error) {
	conv, err := convert.Convert(v, rowsType)
	if err != nil {
		return nil, fmt.Errorf("rows must be a list of lists of integers: %w", err)
	}

	var rows [][]int64
	if err := gocty.FromCtyValue(conv, &rows); err != nil {
		return nil, fmt.Errorf("rows must hold integers: %w", err)
	}

	return matrix.FromRows(rows)
}

// Validate checks name uniqueness across all blocks and that every reference
// points at a matrix or at an operation declared earlier.
func (j *Job) Validate() error {
	seen := make(map[string]string)
	claim := func(kind, name string) error {
		if prev, ok := seen[name]; ok {
			return jobError(kind, name, fmt.Errorf("%w: already used by %s %q", ErrDuplicateName, prev, name))
		}
		seen[name] = kind

		return nil
	}

	// values holds names that resolve to a matrix at this point of the run.
	values := make(map[string]bool)
	for _, m := range j.Matrices {
		if err := claim(KindMatrix, m.Name); err != nil {
			return err
		}
		if (m.File == "") == (m.Rows == nil) {
			return jobError(KindMatrix, m.Name, ErrMatrixSource)
		}
		values[m.Name] = true
	}
	for _, op := range j.Operations {
		if err := claim(KindOperation, op.Name); err != nil {
			return err
		}
		for _, ref := range []string{op.Left, op.Right} {
			if !values[ref] {
				return jobError(KindOperation, op.Name, fmt.Errorf("%w: %q", ErrUnknownName, ref))
			}
		}
		values[op.Name] = true
	}
	for _, d := range j.Determinants {
		if err := claim(KindDeterminant, d.Name); err != nil {
			return err
		}
		if !values[d.Matrix] {
			return jobError(KindDeterminant, d.Name, fmt.Errorf("%w: %q", ErrUnknownName, d.Matrix))
		}
	}

	return nil
}

// resolve returns p unchanged if absolute, otherwise joined onto j.Dir.
func (j *Job) resolve(p string) string {
	if filepath.IsAbs(p) || j.Dir == "" {
		return p
	}

	return filepath.Join(j.Dir, p)
}
