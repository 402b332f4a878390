package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// LOG_LEVEL (debug|info|warn|error) overrides the environment default.
func Setup(env string) {
	logger := New(env, os.Stdout, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env)
}

// New builds a logger writing to w
func New(env string, w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	json := false

	switch env {
	case "production", "prod":
		// Production: JSON format
		json = true
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
	}

	if lvl, ok := ParseLevel(level); ok {
		opts.Level = lvl
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
