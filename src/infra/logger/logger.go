// Package logger provides structured logging using Go's standard library slog.
//
// Why slog over zap?
// - slog is part of the standard library (Go 1.21+), reducing external dependencies
// - It's the idiomatic choice for new Go projects going forward
// - Performance is comparable to zap for most use cases
// - Built-in support for structured logging with type-safe attributes
//
// Usage:
//
//	log := logger.New(cfg.Log)
//	log.Info("server starting", "port", 8080)
//	log.Error("failed to connect", "error", err)
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"staffdir/src/infra/config"
)

// New creates a new slog.Logger based on the provided configuration.
// It supports JSON and text output formats, and configurable log levels.
func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a new logger that writes to the specified writer.
// This is useful for testing or writing logs to files.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug, // Add source info only in debug mode
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
// Defaults to Info if the level is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a new logger with the request ID added to all log entries.
// Use this in HTTP handlers after extracting the request ID from context.
func WithRequestID(log *slog.Logger, requestID string) *slog.Logger {
	return log.With("request_id", requestID)
}

// WithComponent returns a new logger with a component name added.
// Useful for identifying which part of the application generated the log.
func WithComponent(log *slog.Logger, component string) *slog.Logger {
	return log.With("component", component)
}
