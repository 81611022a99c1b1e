// Package config loads the gridsheet YAML configuration and watches it
// for changes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/gridsheet/internal/grid"
)

// SchemaVersion is written by the seed command and assumed when a file omits it
const SchemaVersion = "1.0.0"

// supportedSchemas is the range of config schemas this build understands
const supportedSchemas = ">= 1.0.0, < 2.0.0"

// ErrUnsupportedSchema is returned when the config schema falls outside supportedSchemas
var ErrUnsupportedSchema = errors.New("unsupported config schema")

// Config represents the gridsheet configuration
type Config struct {
	Schema  string        `yaml:"schema"`
	Filter  string        `yaml:"filter"`
	Columns ColumnsConfig `yaml:"columns"`
	Theme   ThemeConfig   `yaml:"theme"`
	Log     LogConfig     `yaml:"log"`
	Seed    SeedConfig    `yaml:"seed"`
}

// ColumnsConfig controls column widths in terminal cells
type ColumnsConfig struct {
	Widths        map[string]int `yaml:"widths"`
	MinWidth      int            `yaml:"minWidth"`
	FallbackWidth int            `yaml:"fallbackWidth"`
	// ResizeOffset is subtracted from the drag distance when resizing
	ResizeOffset int `yaml:"resizeOffset"`
}

// ThemeConfig holds lipgloss color values (ANSI numbers or hex)
type ThemeConfig struct {
	Accent   string `yaml:"accent"`
	Muted    string `yaml:"muted"`
	Selected string `yaml:"selected"`
	Border   string `yaml:"border"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// SeedConfig points at an optional SQLite seed database
type SeedConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Schema: SchemaVersion,
		Filter: grid.FilterAll.String(),
		Columns: ColumnsConfig{
			Widths: map[string]int{
				"name":   20,
				"email":  28,
				"status": 12,
			},
			MinWidth:      6,
			FallbackWidth: 20,
		},
		Theme: ThemeConfig{
			Accent:   "33",
			Muted:    "243",
			Selected: "229",
			Border:   "239",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the schema version and the values the grid relies on
func (c *Config) Validate() error {
	if err := checkSchema(c.Schema); err != nil {
		return err
	}
	if _, err := grid.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	for key, w := range c.Columns.Widths {
		if _, err := grid.ParseColumn(key); err != nil {
			return fmt.Errorf("invalid column width: %w", err)
		}
		if w <= 0 {
			return fmt.Errorf("column %q width must be positive, got %d", key, w)
		}
	}
	if c.Columns.MinWidth < 1 {
		return fmt.Errorf("columns.minWidth must be at least 1, got %d", c.Columns.MinWidth)
	}
	if c.Columns.ResizeOffset < 0 {
		return fmt.Errorf("columns.resizeOffset must not be negative, got %d", c.Columns.ResizeOffset)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func checkSchema(schema string) error {
	if schema == "" {
		schema = SchemaVersion
	}
	v, err := semver.NewVersion(schema)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedSchema, schema, err)
	}
	constraint, err := semver.NewConstraint(supportedSchemas)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedSchema, v, supportedSchemas)
	}
	return nil
}

// InitialFilter returns the filter the grid starts with
func (c *Config) InitialFilter() grid.Filter {
	f, _ := grid.ParseFilter(c.Filter)
	return f
}

// GridOptions converts the column settings to grid options
func (c *Config) GridOptions() grid.Options {
	opts := grid.Options{
		MinColumnWidth: c.Columns.MinWidth,
		ResizeOffset:   c.Columns.ResizeOffset,
		FallbackWidth:  c.Columns.FallbackWidth,
		Widths:         make(map[grid.Column]int, len(c.Columns.Widths)),
	}
	for key, w := range c.Columns.Widths {
		col, err := grid.ParseColumn(key)
		if err != nil {
			continue
		}
		opts.Widths[col] = w
	}
	return opts
}

// ParseLevel converts a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
}

// LogLevel returns the configured slog level
func (c *Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Log.Level)
	return level
}
