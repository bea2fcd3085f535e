// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// File to append to. Takes precedence over Output.
	File string

	// Output writer when no file is set (default: discard, the TUI owns stdout)
	Output io.Writer

	// Session ID added to every entry (default: random UUID)
	SessionID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a logger according to cfg
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	output := cfg.Output
	var closer io.Closer

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		output = f
		closer = f
	}
	if output == nil {
		output = io.Discard
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(cfg.Level))

	opts := &slog.HandlerOptions{Level: levelVar}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	base := slog.New(handler).With("logger", cfg.ServiceName, "session", sessionID)

	return &Logger{
		Logger: base,
		level:  levelVar,
		closer: closer,
	}, nil
}

// Nop creates a logger that discards everything
func Nop() *Logger {
	logger, _ := NewLogger(DefaultLoggerConfig("nop"))
	return logger
}

// parseLevel converts a string level to a slog level
func parseLevel(level string) slog.Level {
	switch level {
	case "trace":
		return slog.LevelDebug - 4
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
