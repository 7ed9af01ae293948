package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the parse command
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSource = "source"
)

var logLevels = []string{"disabled", "trace", "debug", "info", "warn", "error"}

// Config holds the settings of a shiryu project
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// OutputConfig holds settings for printing trees and tokens
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: FormatPretty,
		},
	}
}

// Load reads a TOML or YAML configuration file on top of the defaults. The
// format is picked from the file extension.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for unknown values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatPretty, FormatJSON, FormatYAML, FormatSource:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}

	for _, level := range logLevels {
		if c.Log.Level == level {
			return nil
		}
	}

	return fmt.Errorf("invalid log level %q", c.Log.Level)
}
