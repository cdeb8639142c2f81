// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Playlist PlaylistConfig `yaml:"playlist"`
	Mixer    MixerConfig    `yaml:"mixer"`
	Rotation RotationConfig `yaml:"rotation"`
	Log      LogConfig      `yaml:"log"`
}

// PlaylistConfig represents playlist storage configuration.
type PlaylistConfig struct {
	Name     string `yaml:"name" default:"default" validate:"required,excludesall=/"`
	DataRoot string `yaml:"data_root" default:"data" validate:"required"`
	Format   string `yaml:"format" default:"json" validate:"oneof=json yaml yml"`
}

// MixerConfig represents mixer configuration.
type MixerConfig struct {
	Name       string `yaml:"name" default:"main"`
	PixelCount int    `yaml:"pixel_count" default:"300" validate:"gte=1"`
}

// RotationConfig represents automatic rotation configuration.
type RotationConfig struct {
	IntervalSec int  `yaml:"interval_sec" default:"30" validate:"gte=1"`
	Reverse     bool `yaml:"reverse"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
}

// Default returns the configuration used when no config file exists.
func Default() (*Config, error) {
	var cfg Config
	cfg.overrideFromEnv()
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
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

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("FIREMIX_PLAYLIST"); v != "" {
		c.Playlist.Name = v
	}
	if v := os.Getenv("FIREMIX_DATA_ROOT"); v != "" {
		c.Playlist.DataRoot = v
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

// OverridePlaylist replaces the playlist name and re-validates the configuration.
// On failure the previous name is kept.
func (c *Config) OverridePlaylist(name string) error {
	prev := c.Playlist.Name
	c.Playlist.Name = name
	if err := c.Validate(); err != nil {
		c.Playlist.Name = prev
		return errors.Wrapf(err, "invalid playlist name %q", name)
	}
	return nil
}

// RotationInterval returns the rotation interval as a duration.
func (c *Config) RotationInterval() time.Duration {
	return time.Duration(c.Rotation.IntervalSec) * time.Second
}
