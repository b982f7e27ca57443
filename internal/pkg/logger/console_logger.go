package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger writes text records to stderr, leaving stdout to command output.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(level, os.Stderr)
}

func newConsoleLogger(level string, w io.Writer) *slogLogger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
