package sdlkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every log record. Because Enabled reports false,
// slog never formats the message, so the disabled path costs next to
// nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns a logger backed by nopHandler.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger behind an atomic pointer, so swapping
// the logger never races with a goroutine that is mid-log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger installs the logger sdlkit writes to. Out of the box the
// library is silent; pass nil to return to that state.
//
// sdlkit logs resource lifecycle events (window created, texture loaded,
// cached texture reused) at [slog.LevelDebug] and release failures during
// Close at [slog.LevelWarn]. Nothing is logged above Warn: real failures
// are returned as errors, never logged on the library's behalf.
//
// SetLogger stores the logger atomically and may be called at any time,
// from any goroutine.
//
//	sdlkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger sdlkit currently writes to. Safe for
// concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
