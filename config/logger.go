package config

import (
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the given environment, honoring
// LOG_LEVEL (debug, info, warn, error; default info).
// Production uses the JSON handler; otherwise the text handler.
func NewLogger(environment string) *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
