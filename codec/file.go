// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/matcalc/matrix"
)

// ReadFile maps path read-only and parses its contents.
// An empty file parses as empty text (ErrTooFewRows under the default policy).
func ReadFile(path string, opts ...Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("codec: read %s: is a directory", path)
	}
	if info.Size() == 0 {
		return Parse("", opts...)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("codec: mmap %s: %w", path, err)
	}
	defer data.Unmap()

	// string() copies out of the mapping before Unmap runs.
	return Parse(string(data), opts...)
}

// WriteFile stores m at path in the semicolon storage format, replacing any
// existing file. A nil m is rejected before path is touched.
func WriteFile(path string, m *matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err = Encode(w, m, Semicolon); err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}

	return nil
}
