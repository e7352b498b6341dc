package app

import (
	"io"
	"log/slog"
)

// parseLevel maps a config level string onto its slog.Level. Unknown
// strings fall back to info; NewConfig has already rejected them anyway.
func parseLevel(levelStr string) slog.Level {
	switch levelStr {
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

// newLogger creates the App's isolated slog.Logger writing to logW. The
// global default logger is never touched, so tests can run Apps side by
// side with independent capture buffers.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
