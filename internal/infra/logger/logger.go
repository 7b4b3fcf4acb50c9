// Where: internal/infra/logger/logger.go
// What: Diagnostic logger construction.
// Why: Keep debug traces on stderr, apart from the user-facing console output.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to out. Verbose enables debug records;
// otherwise only warnings and errors are emitted.
func New(out io.Writer, verbose bool) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
