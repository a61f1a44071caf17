// Package cli implements the foyer command-line interface.
//
// The root command launches the full-screen portfolio; subcommands give
// script-friendly access to the same data without a terminal takeover:
//
//   - repos: print the repository list to stdout
//   - themes: list the bundled color themes
//
// # Logging
//
// Subcommands log to stderr through charmbracelet/log, with --verbose
// raising the level to debug. The TUI is different: it owns the
// terminal, so its logger writes to the file named by --log-file, or
// nowhere at all.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting that writes to w
// at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a distinct type for context keys so they cannot collide with
// other packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default when
// context setup never ran.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
