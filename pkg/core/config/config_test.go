package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{150 * time.Millisecond}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "150ms" {
		t.Errorf("MarshalText() = %v, want 150ms", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.General.LogFile != "" {
		t.Errorf("General.LogFile = %v, want empty", cfg.General.LogFile)
	}
	if !cfg.Display.LargeDigits || !cfg.Display.ShowHelp || !cfg.Display.Mouse {
		t.Errorf("Display = %+v, want everything enabled", cfg.Display)
	}
	if cfg.Theme.OperatorBg != "#F97316" {
		t.Errorf("Theme.OperatorBg = %v, want #F97316", cfg.Theme.OperatorBg)
	}
	if !cfg.EasterEgg.Enabled {
		t.Error("EasterEgg.Enabled = false, want true")
	}
	if cfg.EasterEgg.IconCount != 75 {
		t.Errorf("EasterEgg.IconCount = %v, want 75", cfg.EasterEgg.IconCount)
	}
	if cfg.EasterEgg.FrameInterval.Duration != 100*time.Millisecond {
		t.Errorf("EasterEgg.FrameInterval = %v, want 100ms", cfg.EasterEgg.FrameInterval.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
log_level = "debug"
log_file = "$MCALC_TEST_DIR/mcalc.log"

[display]
large_digits = false

[theme]
operator_bg = "#FF0000"

[easter_egg]
icon_count = 20
frame_interval = "50ms"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("MCALC_TEST_DIR", tmpDir)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFile != filepath.Join(tmpDir, "mcalc.log") {
		t.Errorf("General.LogFile = %v, want expanded path", cfg.General.LogFile)
	}
	if cfg.Display.LargeDigits {
		t.Error("Display.LargeDigits = true, want false")
	}
	if !cfg.Display.ShowHelp {
		t.Error("Display.ShowHelp should keep its default")
	}
	if cfg.Theme.OperatorBg != "#FF0000" {
		t.Errorf("Theme.OperatorBg = %v, want #FF0000", cfg.Theme.OperatorBg)
	}
	if cfg.Theme.NumberBg != "#374151" {
		t.Errorf("Theme.NumberBg = %v, want default #374151", cfg.Theme.NumberBg)
	}
	if cfg.EasterEgg.IconCount != 20 {
		t.Errorf("EasterEgg.IconCount = %v, want 20", cfg.EasterEgg.IconCount)
	}
	if cfg.EasterEgg.FrameInterval.Duration != 50*time.Millisecond {
		t.Errorf("EasterEgg.FrameInterval = %v, want 50ms", cfg.EasterEgg.FrameInterval.Duration)
	}
}

func TestLoad_ZeroIconCount(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[easter_egg]\nicon_count = 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EasterEgg.IconCount != 0 {
		t.Errorf("EasterEgg.IconCount = %v, want 0", cfg.EasterEgg.IconCount)
	}
	if !cfg.EasterEgg.Enabled {
		t.Error("EasterEgg.Enabled should keep its default")
	}
}

func TestLoad_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `
general:
  log_format: text
easter_egg:
  enabled: false
  ascii_icons: true
  frame_interval: 250ms
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.EasterEgg.Enabled {
		t.Error("EasterEgg.Enabled = true, want false")
	}
	if !cfg.EasterEgg.ASCIIIcons {
		t.Error("EasterEgg.ASCIIIcons = false, want true")
	}
	if cfg.EasterEgg.FrameInterval.Duration != 250*time.Millisecond {
		t.Errorf("EasterEgg.FrameInterval = %v, want 250ms", cfg.EasterEgg.FrameInterval.Duration)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[general\nlog_level = "), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }},
		{"colour", func(c *Config) { c.Theme.OperatorBg = "orange" }},
		{"short colour", func(c *Config) { c.Theme.Display = "#12" }},
		{"icon count", func(c *Config) { c.EasterEgg.IconCount = 1000 }},
		{"frame interval", func(c *Config) { c.EasterEgg.FrameInterval.Duration = time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if path != "" {
		t.Errorf("LoadOrDefault() path = %q, want empty", path)
	}
	if cfg.EasterEgg.IconCount != 75 {
		t.Errorf("LoadOrDefault() should return defaults, got %+v", cfg.EasterEgg)
	}

	if _, _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadOrDefault() expected error for missing explicit path")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("WriteDefault() should refuse to overwrite")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(overwrite) error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written default error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("written default = %+v, want %+v", cfg, Default())
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *recordingLogger) Info(msg string, _ ...interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{}) { l.record(msg) }

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c }, &recordingLogger{})
	}()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("[easter_egg]\nicon_count = 12\n"), 0644); err != nil {
		t.Fatalf("Failed to update config: %v", err)
	}

	select {
	case cfg := <-changes:
		if cfg.EasterEgg.IconCount != 12 {
			t.Errorf("reloaded IconCount = %d, want 12", cfg.EasterEgg.IconCount)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not report the change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not stop after cancel")
	}
}
