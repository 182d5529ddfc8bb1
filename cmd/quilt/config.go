package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a run can take from a YAML file. Flags given on
// the command line override the file.
type Config struct {
	Margin   int     `yaml:"margin"`    // frame width in pixels; wins over border when > 0
	Border   float64 `yaml:"border"`    // frame as a share of half the image height
	Debug    bool    `yaml:"debug"`     // paint seam and hole outline
	Workers  int     `yaml:"workers"`   // 0 means GOMAXPROCS
	LogLevel string  `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Border:   0.2,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.Border < 0 || c.Border > 1 {
		return fmt.Errorf("border must be within [0, 1], got %v", c.Border)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.New("log_level must be one of debug, info, warn, error")
	}
	return level, nil
}

// MarginFor returns the frame width to use for an image of the given height.
func (c Config) MarginFor(height int, fromBorder func(float64, int) int) int {
	if c.Margin > 0 {
		return c.Margin
	}
	return fromBorder(c.Border, height)
}
