// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"

	"github.com/katalvlaran/matcalc/codec"
)

const panicEmptyID = "session: WithID: id must be non-empty"

// Option configures a Workspace at construction time.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Workspace)

// WithLogger pins the workspace logger. Without it, each call logs through
// the logger carried by its context (ctxlog), or slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// WithID overrides the generated workspace id. Panics on "".
func WithID(id string) Option {
	if id == "" {
		panic(panicEmptyID)
	}

	return func(w *Workspace) { w.id = id }
}

// WithCodecOptions forwards opts to every file or text load.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(w *Workspace) { w.codecOpts = append(w.codecOpts, opts...) }
}
