// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glyphgrid and all its sub-packages.
// By default glyphgrid produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by glyphgrid:
//   - [slog.LevelDebug]: per-frame diagnostics (transform recomputes, skipped glyphs)
//   - [slog.LevelInfo]: lifecycle events (atlas loaded, atlas shared)
//   - [slog.LevelWarn]: non-fatal issues (fallback to a differently sized atlas)
//
// Example:
//
//	glyphgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by glyphgrid.
// Sub-packages call this to share the same configuration without
// introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
