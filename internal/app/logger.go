package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's isolated logger. The level is parsed by
// NewConfig; only the handler choice is decided here. It does not touch the
// process-default logger.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
