package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. With debug set every record is
// emitted, otherwise only warnings and errors.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
