// Package config provides configuration management.
package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"beer-recipe/internal/errors"
	"beer-recipe/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `toml:"output" json:"output"`

	// Engine contains evaluation settings
	Engine EngineConfig `toml:"engine" json:"engine"`

	// Measurements points at brew-day gravity readings
	Measurements MeasurementsConfig `toml:"measurements" json:"measurements"`

	// Logging contains logging configuration
	Logging logging.Config `toml:"logging" json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format
	Format string `toml:"format" json:"format" validate:"oneof=table json"`

	// ShowHops prints per-hop contributions
	ShowHops bool `toml:"show_hops" json:"show_hops"`
}

// EngineConfig contains evaluation settings
type EngineConfig struct {
	// Workers bounds concurrent evaluation; 0 uses every CPU
	Workers int `toml:"workers" json:"workers" validate:"gte=0,lte=256"`
}

// MeasurementsConfig locates the measurements file
type MeasurementsConfig struct {
	// File is an HCL measurements file, empty for none
	File string `toml:"file,omitempty" json:"file,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns ~/.config/brewcalc/config.toml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "brewcalc.toml"
	}
	return filepath.Join(home, ".config", "brewcalc", "config.toml")
}

// Load reads and validates a configuration file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Config("read config "+path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Config("parse config "+path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Config("invalid config", err)
	}
	return nil
}

// Marshal renders the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Config("create config directory", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return errors.Config("encode config", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
