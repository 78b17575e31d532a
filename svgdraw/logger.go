package svgdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record, and reports itself disabled
// so that messages are never formatted.
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

// SetLogger configures the logger used by the drawing engine.
// By default, nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: progress of a drawing pass (shapes, pen state)
//   - [slog.LevelInfo]: start and end of a pass
//   - [slog.LevelWarn]: interference detected, pass aborted
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger of the package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
