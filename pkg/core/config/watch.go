// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     config
// Description: Hot reload of the configuration file via fsnotify
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay suppresses the burst of events editors emit for one save
const debounceDelay = 200 * time.Millisecond

// Logger is the subset of the logging API the watcher uses
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Watch reloads path whenever it changes and passes every successfully
// loaded configuration to onChange. Invalid files are logged and skipped.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config), logger Logger) error {
	path, err := filepath.Abs(os.ExpandEnv(path))
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, editors often replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	logger.Info("Watching config for changes", "path", path)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			cfg, err := Load(path)
			if err != nil {
				logger.Warn("Config reload failed", "path", path, "error", err)
				continue
			}
			logger.Info("Config reloaded", "path", path)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)
		}
	}
}
