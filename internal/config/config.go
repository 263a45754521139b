package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type Config struct {
	DataDir  string `yaml:"data_dir"`
	DpsDir   string `yaml:"dps_dir"`
	Workers  int    `yaml:"workers"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Color    bool   `yaml:"color"`
	Trace    bool   `yaml:"trace"`
}

func Default() *Config {
	return &Config{
		DataDir:  "data",
		DpsDir:   "dps",
		Workers:  8,
		Format:   FormatTable,
		LogLevel: "info",
		Color:    true,
	}
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
