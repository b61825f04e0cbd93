package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the application logger. Production output is JSON, everything
// else uses the human-readable text handler.
func New(level, env string) *slog.Logger {
	return newWithWriter(os.Stdout, level, env)
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWithWriter(w io.Writer, level, env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
