// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = ".qreplot.yaml"

// Config holds application configuration.
type Config struct {
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"log_level"`

	// Backend selects the drawing library: gonum (default) or gochart.
	Backend string `yaml:"backend"`

	// Format is the output format used when neither -o nor --format says otherwise.
	Format string `yaml:"format"`

	// Width and Height are the figure size in inches; zero keeps the preset size.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// OutputDir, when set, receives derived output files instead of the input's directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// SpecDirs are searched for "<name>.yaml" when --spec names a file that does not exist as given.
	SpecDirs []string `yaml:"spec_dirs,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Backend:  "gonum",
		Format:   "pdf",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", "gonum", "gochart":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("figure size must not be negative")
	}
	return nil
}

// ResolveSpec returns name as-is if it exists, otherwise the first SpecDirs match.
func (c *Config) ResolveSpec(name string) string {
	if _, err := os.Stat(name); err == nil || len(c.SpecDirs) == 0 {
		return name
	}
	for _, dir := range c.SpecDirs {
		for _, cand := range []string{filepath.Join(dir, name), filepath.Join(dir, name+".yaml")} {
			if _, err := os.Stat(cand); err == nil {
				return cand
			}
		}
	}
	return name
}
