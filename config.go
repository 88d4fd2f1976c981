package bnctx

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the tunables of a Context. The zero value is not valid,
// start from DefaultConfig.
type Config struct {
	// MarkerInitialCap is the number of scopes the marker stack holds
	// before its first growth.
	MarkerInitialCap int `toml:"marker_initial_capacity"`
	// MaxTemporaries caps the pool size. 0 means unlimited.
	MaxTemporaries int `toml:"max_temporaries"`
	// LogLevel is the level of the logger built when none is supplied.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		MarkerInitialCap: DefaultMarkerCap,
		MaxTemporaries:   0,
		LogLevel:         "warn",
	}
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bnctx: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig decodes the TOML file at path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("bnctx: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.MarkerInitialCap < 1 {
		return fmt.Errorf("bnctx: marker_initial_capacity must be positive, got %d", c.MarkerInitialCap)
	}
	if c.MaxTemporaries < 0 {
		return fmt.Errorf("bnctx: max_temporaries must not be negative, got %d", c.MaxTemporaries)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("bnctx: log_level: %w", err)
	}
	return lvl, nil
}
