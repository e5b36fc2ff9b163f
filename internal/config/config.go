// Package config loads the YAML configuration of the search workflow.
//
// Example:
//
//	version: "1"
//	data_file: wcag.json
//	base_url: https://www.w3.org/WAI/WCAG21/Understanding
//	typo_tolerance: true
//	max_results: 20
//	debug: false
//
// Every key is optional. A missing file yields Default().
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultVersion  = "1"
	DefaultDataFile = "wcag.json"
	DefaultBaseURL  = "https://www.w3.org/WAI/WCAG21/Understanding"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the workflow configuration.
type Config struct {
	Version string `yaml:"version"`

	// DataFile is the JSON catalog. Relative paths are resolved against the
	// directory of the config file they were read from.
	DataFile string `yaml:"data_file"`

	// BaseURL prefixes every record slug when building result links.
	BaseURL string `yaml:"base_url"`

	// TypoTolerance enables typo expansion when the literal query matches nothing.
	TypoTolerance bool `yaml:"typo_tolerance"`

	// MaxResults truncates the ranked list. Zero means unlimited.
	MaxResults int `yaml:"max_results"`

	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Version:       DefaultVersion,
		DataFile:      DefaultDataFile,
		BaseURL:       DefaultBaseURL,
		TypoTolerance: true,
	}
}

// LoadFile loads and parses a YAML config file. A missing file is not an
// error and yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(filepath.Dir(path), cfg.DataFile)
	}

	return cfg, nil
}

// Parse parses YAML data on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in values that were explicitly set to empty.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: max_results must not be negative, got %d", ErrInvalidConfig, c.MaxResults)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url must be an absolute URL, got %q", ErrInvalidConfig, c.BaseURL)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
