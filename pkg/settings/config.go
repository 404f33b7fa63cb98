// Package settings holds the configuration consumed by the
// demonstration driver.
package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Logger Logger `yaml:"logger"`
	Demo   Demo   `yaml:"demo"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `yaml:"max_size" validate:"gte=0"`
	Compress    bool   `yaml:"compress"`
}

// Demo is the configuration for the demonstration scenarios
type Demo struct {
	// Elements is the sequence length used by the bulk move/growth scenarios.
	Elements int `yaml:"elements" validate:"gt=0"`
	// MaxCapacity bounds vectors under demonstration (0 = unbounded).
	MaxCapacity int `yaml:"max_capacity" validate:"gte=0"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Logger: Logger{LogLevel: "info"},
		Demo:   Demo{Elements: 1_000_000},
	}
}

// Load reads, parses and validates a YAML configuration file.
// Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
