// Package config loads driver settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatPretty = "pretty"
	FormatSARIF  = "sarif"
)

// Config holds driver settings for diagnostic output
type Config struct {
	// Output format: "pretty" (console with carets) or "sarif"
	Format string `yaml:"format"`
	// Disable ANSI colors in pretty output
	NoColor bool `yaml:"no_color"`
	// Destination file for SARIF output ("-" or empty means stdout)
	SARIFOutput string `yaml:"sarif_output"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Format: FormatPretty,
	}
}

// Load reads a YAML config from path. A missing file yields the defaults;
// a malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPretty, FormatSARIF:
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected %q or %q)", c.Format, FormatPretty, FormatSARIF)
	}
}
