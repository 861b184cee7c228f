package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Diagnostics go to stderr
// so the one-line run summary printed on stdout stays machine-consumable.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Discard returns a logger for tests that should stay quiet.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
