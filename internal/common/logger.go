package common

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger configures the global logger with appropriate settings.
// Format is "console" or "json"; anything else falls back to console.
func SetupLogger(level slog.Level, format string) {
	setupLogger(os.Stderr, level, format)
}

func setupLogger(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLogLevel maps a configuration string to a slog level, defaulting
// to info for unrecognized values.
func ParseLogLevel(s string) slog.Level {
	switch s {
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
