// Package config loads settings for the jscene command-line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileNames are the names searched for by FindConfigFile, in order.
var FileNames = []string{".jscene.yml", ".jscene.yaml", "jscene.yml", "jscene.yaml"}

// KeyCases are the valid settings for the key_case option. An empty value
// leaves object keys unchanged.
var KeyCases = []string{"", "snake", "camel", "lower_camel", "kebab"}

// Config represents the complete configuration for jscene.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Format   FormatConfig `yaml:"format"`
	GLB      GLBConfig    `yaml:"glb"`
}

// FormatConfig controls parsing and rendering of JSON text.
type FormatConfig struct {
	Indent        int    `yaml:"indent"`
	HuJSON        bool   `yaml:"hujson"`
	LegacyEscapes bool   `yaml:"legacy_escapes"`
	MaxDepth      int    `yaml:"max_depth"`
	KeyCase       string `yaml:"key_case"`
}

// GLBConfig controls scene extraction.
type GLBConfig struct {
	Workers  int    `yaml:"workers"`
	MaxDepth int    `yaml:"max_depth"`
	Indent   int    `yaml:"indent"`
	KeyCase  string `yaml:"key_case"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Format: FormatConfig{
			Indent:   2,
			MaxDepth: 1024,
		},
		GLB: GLBConfig{
			Workers:  4,
			MaxDepth: 10,
			Indent:   2,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Settings not mentioned in
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches dir and its parents for a config file, and returns
// the path of the first one found. It returns "" if there is none.
func FindConfigFile(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate reports an error if any setting of c is out of range.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Format.MaxDepth <= 0 {
		return fmt.Errorf("format.max_depth must be positive (got %d)", c.Format.MaxDepth)
	}
	if c.GLB.MaxDepth <= 0 {
		return fmt.Errorf("glb.max_depth must be positive (got %d)", c.GLB.MaxDepth)
	}
	if c.GLB.Workers <= 0 {
		return fmt.Errorf("glb.workers must be positive (got %d)", c.GLB.Workers)
	}
	for _, kc := range []string{c.Format.KeyCase, c.GLB.KeyCase} {
		if !slices.Contains(KeyCases, kc) {
			return fmt.Errorf("invalid key_case %q", kc)
		}
	}
	return nil
}

// Level returns the log level named by c.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level: %w", err)
	}
	return lvl, nil
}
