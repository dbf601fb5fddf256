// Package logging builds the slog loggers used by the engine and the CLI.
// Operational output goes to stderr so that stdout carries only results.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a config or flag level name onto slog; anything it does
// not recognise logs at info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger at the named level. Attributes logged under
// "error" come out as "err".
func New(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level), ReplaceAttr: shortErrKey}

	return slog.New(slog.NewTextHandler(w, opts))
}

func shortErrKey(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}

	return a
}

// NewNop is the engine's default logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
