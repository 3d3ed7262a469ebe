// ABOUTME: Shared slog setup for the companion app
// ABOUTME: Screens log through this so background failures never crash the session
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Screens report remote and
// storage failures here; nothing logged is fatal to the session.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
