// Package config loads the optional .anchorfix.yaml defaults file.
// Command-line flags always win over file values; the file only supplies
// defaults for prefix, output directory, and report format.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = ".anchorfix.yaml"

// Config holds the file-supplied defaults.
type Config struct {
	Prefix       string `yaml:"prefix,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`
	ReportFormat string `yaml:"report_format,omitempty"` // markdown, json, or pdf
}

// Load reads and parses a config file. A missing path is an error;
// use LoadDefault when the file is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault reads DefaultFile from the working directory if present.
// Absence is not an error: an empty Config is returned.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ReportFormat {
	case "", "markdown", "json", "pdf":
		return nil
	default:
		return fmt.Errorf("unknown report_format %q (want markdown, json, or pdf)", c.ReportFormat)
	}
}
