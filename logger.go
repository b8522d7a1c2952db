package pathanim

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record; Enabled reports false so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l for pathanim and its render, storage and export
// packages. Logging is off until it is called; nil turns it off again.
// It may be called while batches are running.
//
// Messages are prefixed with the emitting package. Repairs of loaded
// documents are warnings ("pathanim: skipping path", "pathanim: invalid
// color, using fallback"), batch steps are info ("render: scaling path",
// "render: generated tracks") and per-path detail is debug
// ("pathanim: windowing track", "storage: cached background"):
//
//	pathanim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
//	doc := pathanim.ParseDocument(data) // logs skipped paths
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
