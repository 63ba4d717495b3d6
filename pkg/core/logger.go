package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Logger interface for progress output of long-running operations
type Logger interface {
	Printf(format string, args ...interface{})
}

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the diagnostics logger shared by every package of the
// ray tracer. By default nothing is logged; pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: degenerate numeric input (singular matrices, zero vectors)
//   - [slog.LevelInfo]: render lifecycle
//   - [slog.LevelWarn]: skipped objects and recoverable scene problems
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Log returns the current diagnostics logger. Safe for concurrent use.
func Log() *slog.Logger {
	return loggerPtr.Load()
}
