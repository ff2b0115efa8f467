package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON stdout logger; handlers and services take it as a
// dependency so tests can swap in a silent one.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// Discard returns a logger that drops everything. Test use only.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
