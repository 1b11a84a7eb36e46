// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/internal/ctxlog"
	"github.com/katalvlaran/matcalc/matrix"
)

// Workspace holds two operand slots and the last result.
type Workspace struct {
	id        string
	logger    *slog.Logger
	codecOpts []codec.Option

	mu     sync.RWMutex
	slots  [2]*matrix.Matrix
	result *matrix.Matrix
}

// New returns an empty workspace with a random id.
func New(opts ...Option) *Workspace {
	w := &Workspace{id: uuid.NewString()}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	return w
}

// ID identifies the workspace in log records.
func (w *Workspace) ID() string { return w.id }

func (w *Workspace) log(ctx context.Context) *slog.Logger {
	l := w.logger
	if l == nil {
		l = ctxlog.FromContext(ctx)
	}

	return l.With("session", w.id)
}

// Load reads the matrix stored at path into slot.
// On any error the slot keeps its previous content.
func (w *Workspace) Load(ctx context.Context, slot Slot, path string) (*matrix.Matrix, error) {
	log := w.log(ctx)
	log.Info("load matrix", "slot", int(slot), "path", path)
	if !slot.Valid() {
		log.Warn("load rejected", "slot", int(slot), "error", ErrBadSlot)
		return nil, sessionErrorf("load", ErrBadSlot)
	}

	m, err := codec.ReadFile(path, w.codecOpts...)
	if err != nil {
		log.Warn("load failed", "slot", int(slot), "path", path, "error", err)
		return nil, sessionErrorf("load "+slot.String(), err)
	}
	w.store(slot, m)
	log.Debug("matrix loaded", "slot", int(slot), "shape", m.Shape().String())

	return m, nil
}

// LoadText parses text into slot. On any error the slot keeps its previous content.
func (w *Workspace) LoadText(ctx context.Context, slot Slot, text string) (*matrix.Matrix, error) {
	log := w.log(ctx)
	log.Info("load matrix text", "slot", int(slot))
	if !slot.Valid() {
		log.Warn("load rejected", "slot", int(slot), "error", ErrBadSlot)
		return nil, sessionErrorf("load", ErrBadSlot)
	}

	m, err := codec.Parse(text, w.codecOpts...)
	if err != nil {
		log.Warn("load failed", "slot", int(slot), "error", err)
		return nil, sessionErrorf("load "+slot.String(), err)
	}
	w.store(slot, m)

	return m, nil
}

// Set places an already built matrix into slot.
func (w *Workspace) Set(ctx context.Context, slot Slot, m *matrix.Matrix) error {
	if !slot.Valid() {
		return sessionErrorf("set", ErrBadSlot)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return sessionErrorf("set "+slot.String(), err)
	}
	w.store(slot, m)
	w.log(ctx).Info("set matrix", "slot", int(slot), "shape", m.Shape().String())

	return nil
}

func (w *Workspace) store(slot Slot, m *matrix.Matrix) {
	w.mu.Lock()
	w.slots[slot.index()] = m
	w.mu.Unlock()
}

// Matrix returns the content of slot, or ErrSlotEmpty.
func (w *Workspace) Matrix(slot Slot) (*matrix.Matrix, error) {
	if !slot.Valid() {
		return nil, sessionErrorf("get", ErrBadSlot)
	}
	w.mu.RLock()
	m := w.slots[slot.index()]
	w.mu.RUnlock()
	if m == nil {
		return nil, sessionErrorf("get "+slot.String(), ErrSlotEmpty)
	}

	return m, nil
}

// Show renders slot in the display format.
func (w *Workspace) Show(slot Slot) (string, error) {
	m, err := w.Matrix(slot)
	if err != nil {
		return "", err
	}

	return codec.Display(m), nil
}

// Apply computes slot1 op slot2 and records it as the current result.
// Both slots must be loaded; on failure the previous result is kept.
func (w *Workspace) Apply(ctx context.Context, op matrix.Op) (*matrix.Matrix, error) {
	log := w.log(ctx)
	log.Info("apply operation", "op", op.String())

	w.mu.RLock()
	a, b := w.slots[0], w.slots[1]
	w.mu.RUnlock()
	if a == nil || b == nil {
		log.Warn("apply rejected", "op", op.String(), "error", ErrSlotEmpty)
		return nil, sessionErrorf(op.String(), ErrSlotEmpty)
	}

	res, err := matrix.Apply(op, a, b)
	if err != nil {
		log.Warn("apply failed", "op", op.String(), "error", err)
		return nil, sessionErrorf(op.String(), err)
	}

	w.mu.Lock()
	w.result = res
	w.mu.Unlock()
	log.Debug("operation done", "op", op.String(), "shape", res.Shape().String())

	return res, nil
}

// Determinant computes the determinant of the matrix in slot.
// It does not change the current result.
func (w *Workspace) Determinant(ctx context.Context, slot Slot) (int64, error) {
	log := w.log(ctx)
	log.Info("determinant", "slot", int(slot))

	m, err := w.Matrix(slot)
	if err != nil {
		log.Warn("determinant rejected", "slot", int(slot), "error", err)
		return 0, err
	}
	det, err := matrix.Determinant(m)
	if err != nil {
		log.Warn("determinant failed", "slot", int(slot), "error", err)
		return 0, sessionErrorf("determinant "+slot.String(), err)
	}

	return det, nil
}

// Result returns the last successful Apply result, or ErrNoResult.
func (w *Workspace) Result() (*matrix.Matrix, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.result == nil {
		return nil, sessionErrorf("result", ErrNoResult)
	}

	return w.result, nil
}

// Save writes the matrix in slot to path in the storage format.
func (w *Workspace) Save(ctx context.Context, slot Slot, path string) error {
	log := w.log(ctx)
	log.Info("save matrix", "slot", int(slot), "path", path)

	m, err := w.Matrix(slot)
	if err != nil {
		log.Warn("save rejected", "slot", int(slot), "error", err)
		return err
	}

	return w.write(log, m, path)
}

// SaveResult writes the current result to path in the storage format.
func (w *Workspace) SaveResult(ctx context.Context, path string) error {
	log := w.log(ctx)
	log.Info("save result", "path", path)

	m, err := w.Result()
	if err != nil {
		log.Warn("save rejected", "error", err)
		return err
	}

	return w.write(log, m, path)
}

func (w *Workspace) write(log *slog.Logger, m *matrix.Matrix, path string) error {
	if err := codec.WriteFile(path, m); err != nil {
		log.Warn("save failed", "path", path, "error", err)
		return sessionErrorf("save", err)
	}

	return nil
}

// Reset empties both slots and forgets the result.
func (w *Workspace) Reset(ctx context.Context) {
	w.mu.Lock()
	w.slots = [2]*matrix.Matrix{}
	w.result = nil
	w.mu.Unlock()
	w.log(ctx).Info("workspace reset")
}
