// Package log builds the slog loggers the binaries use for diagnostics.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// BuildLogger returns a text logger writing to w at the given level.
func BuildLogger(w io.Writer, level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, ops))
}

// ParseLevel maps a config level name onto slog's levels. Unknown names
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
