package logger

import (
	"log/slog"
	"strings"
)

// New builds a logger at the named level using the supplied handler
// constructor. Injecting the constructor lets tests swap in NewTestHandler.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	h := handler(parseLevel(level))
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
