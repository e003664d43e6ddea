// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the player looks for its config file when no
// --config flag is given. A missing file at this path is not an error;
// the built-in defaults apply instead.
const DefaultPath = "config/player.yaml"

// Config represents the application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Shell   ShellConfig   `yaml:"shell"`
}

// CatalogConfig represents video library configuration.
type CatalogConfig struct {
	Source SourceConfig `yaml:"source"`
}

// SourceConfig represents a catalog source. Settings are decoded per-type
// by the catalog package.
type SourceConfig struct {
	Type     string         `yaml:"type" default:"builtin" validate:"oneof=builtin file"`
	Settings map[string]any `yaml:"settings"`
}

// ShellConfig represents interactive shell configuration.
type ShellConfig struct {
	Prompt string `yaml:"prompt" default:"YT> "`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists:
// struct-tag defaults plus any environment overrides.
func Default() (*Config, error) {
	var cfg Config
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finish applies environment overrides, defaults and validation, in that
// order, so an override is still defaulted and validated.
func (c *Config) finish() error {
	c.overrideFromEnv()

	if err := defaults.Set(c); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("VIDEOPLAYER_LIBRARY"); v != "" {
		c.Catalog.Source = SourceConfig{
			Type:     "file",
			Settings: map[string]any{"path": v},
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
