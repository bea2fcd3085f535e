// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     logging
// Description: Structured key/value logger used by all mCalc components
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"log/slog"
)

// Logger is a structured logger taking key-value pairs:
//
//	logger.Info("Config reloaded", "path", path)
type Logger struct {
	*slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

// SetLevel changes the minimum level of this logger and all loggers derived
// from it via With. Unknown names select info.
func (l *Logger) SetLevel(level string) {
	l.level.Set(parseLevel(level))
}

// With returns a logger that adds the given key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.With(keysAndValues...),
		level:  l.level,
	}
}

// Close releases the log file, if the logger owns one
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
