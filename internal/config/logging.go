package config

import (
	"io"
	"log/slog"
)

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// The log level to use (debug, info, warn, error).
	LevelStr string `yaml:"level"`
	// The log format to use (json, text).
	Format string `yaml:"format"`
}

// Conform to the slog.Leveler interface.
func (c LoggingConfig) Level() slog.Level {
	switch c.LevelStr {
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

// NewLogger builds the logger described by the config, writing to w.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c}

	var handler slog.Handler

	switch c.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetDefaultLogger installs the logger described by the config as the slog default.
func (c LoggingConfig) SetDefaultLogger(w io.Writer) {
	slog.SetDefault(c.NewLogger(w))
	slog.Debug("logging: set default logger", "level", c.LevelStr, "format", c.Format)
}
