package hdbscan

import (
	"io"
	"log/slog"
	"os"
)

// newLogger returns a component-scoped logger. When debug is false, it
// discards everything; DebugMode has no effect on clustering output, only
// on whether these diagnostic traces are emitted.
func newLogger(debug bool) *slog.Logger {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return slog.New(handler).With(slog.String("component", "hdbscan"))
}
