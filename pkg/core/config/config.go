package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Display   DisplayConfig   `toml:"display" yaml:"display"`
	Theme     ThemeConfig     `toml:"theme" yaml:"theme"`
	EasterEgg EasterEggConfig `toml:"easter_egg" yaml:"easter_egg"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// DisplayConfig controls what the TUI shows
type DisplayConfig struct {
	LargeDigits bool `toml:"large_digits" yaml:"large_digits"`
	ShowHelp    bool `toml:"show_help" yaml:"show_help"`
	Mouse       bool `toml:"mouse" yaml:"mouse"`
}

// ThemeConfig holds the colours of the calculator skin
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	Display    string `toml:"display" yaml:"display"`
	Muted      string `toml:"muted" yaml:"muted"`
	NumberBg   string `toml:"number_bg" yaml:"number_bg"`
	NumberFg   string `toml:"number_fg" yaml:"number_fg"`
	OperatorBg string `toml:"operator_bg" yaml:"operator_bg"`
	OperatorFg string `toml:"operator_fg" yaml:"operator_fg"`
	ActionBg   string `toml:"action_bg" yaml:"action_bg"`
	ActionFg   string `toml:"action_fg" yaml:"action_fg"`
	PressedBg  string `toml:"pressed_bg" yaml:"pressed_bg"`
	Border     string `toml:"border" yaml:"border"`
}

// EasterEggConfig holds settings of the christmas overlay
type EasterEggConfig struct {
	Enabled       bool     `toml:"enabled" yaml:"enabled"`
	// IconCount 0 shows the card without decorations
	IconCount     int      `toml:"icon_count" yaml:"icon_count"`
	FrameInterval Duration `toml:"frame_interval" yaml:"frame_interval"`
	ASCIIIcons    bool     `toml:"ascii_icons" yaml:"ascii_icons"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			LargeDigits: true,
			ShowHelp:    true,
			Mouse:       true,
		},
		EasterEgg: EasterEggConfig{
			Enabled:   true,
			IconCount: 75,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns ~/.mcalc/config.toml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mcalc", "config.toml")
	}
	return filepath.Join(home, ".mcalc", "config.toml")
}

// Load loads configuration from a TOML or YAML file. Keys missing in the file
// keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path if it exists. An empty path falls back to
// DefaultPath, and a missing default file yields the built-in defaults.
func LoadOrDefault(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := os.Stat(os.ExpandEnv(path)); os.IsNotExist(err) && !explicit {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

// Encode writes cfg as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := Default().Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	// Theme
	if c.Theme.Background == "" {
		c.Theme.Background = "#000000"
	}
	if c.Theme.Display == "" {
		c.Theme.Display = "#FFFFFF"
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = "#9CA3AF"
	}
	if c.Theme.NumberBg == "" {
		c.Theme.NumberBg = "#374151"
	}
	if c.Theme.NumberFg == "" {
		c.Theme.NumberFg = "#FFFFFF"
	}
	if c.Theme.OperatorBg == "" {
		c.Theme.OperatorBg = "#F97316"
	}
	if c.Theme.OperatorFg == "" {
		c.Theme.OperatorFg = "#FFFFFF"
	}
	if c.Theme.ActionBg == "" {
		c.Theme.ActionBg = "#D1D5DB"
	}
	if c.Theme.ActionFg == "" {
		c.Theme.ActionFg = "#111827"
	}
	if c.Theme.PressedBg == "" {
		c.Theme.PressedBg = "#6B7280"
	}
	if c.Theme.Border == "" {
		c.Theme.Border = "#1F2937"
	}

	// Easter egg
	if c.EasterEgg.FrameInterval.Duration == 0 {
		c.EasterEgg.FrameInterval.Duration = 100 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks value ranges and formats
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.General.LogLevel)
	}

	switch c.General.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.General.LogFormat)
	}

	colors := map[string]string{
		"theme.background":  c.Theme.Background,
		"theme.display":     c.Theme.Display,
		"theme.muted":       c.Theme.Muted,
		"theme.number_bg":   c.Theme.NumberBg,
		"theme.number_fg":   c.Theme.NumberFg,
		"theme.operator_bg": c.Theme.OperatorBg,
		"theme.operator_fg": c.Theme.OperatorFg,
		"theme.action_bg":   c.Theme.ActionBg,
		"theme.action_fg":   c.Theme.ActionFg,
		"theme.pressed_bg":  c.Theme.PressedBg,
		"theme.border":      c.Theme.Border,
	}
	for key, value := range colors {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("%w: %s must be a hex colour, got %q", ErrInvalidConfig, key, value)
		}
	}

	if c.EasterEgg.IconCount < 0 || c.EasterEgg.IconCount > 500 {
		return fmt.Errorf("%w: easter_egg.icon_count must be between 0 and 500, got %d",
			ErrInvalidConfig, c.EasterEgg.IconCount)
	}
	if c.EasterEgg.FrameInterval.Duration < 10*time.Millisecond {
		return fmt.Errorf("%w: easter_egg.frame_interval must be at least 10ms, got %v",
			ErrInvalidConfig, c.EasterEgg.FrameInterval.Duration)
	}

	return nil
}
