// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/insper-data/insperplot/pkg/config"
)

const attrApp = "app"

// appName tags every record so mixed log streams stay attributable.
const appName = "insperplot"

// New builds a logger per the logging configuration, writing to w.
// Unknown levels fall back to info; unknown formats fall back to text.
// Load-time validation rejects both, so the fallbacks only matter for
// hand-built configs.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String(attrApp, appName))
}

// Default builds a stderr logger from the configuration.
func Default(cfg config.LoggingConfig) *slog.Logger {
	return New(cfg, os.Stderr)
}

// ParseLevel maps a config level string to a slog level.
func ParseLevel(level string) slog.Level {
	switch level {
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
