package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"PackageExpress/internal/calculator"
	"PackageExpress/internal/validation"
)

const DefaultLevel = "warn"

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all application configuration.
//
// Limits and pricing come only from a file passed explicitly to Load.
// The environment and .env can change logging, nothing else.
type Config struct {
	Limits struct {
		MaxWeight     float64 `yaml:"max_weight" validate:"gt=0"`
		MaxDimensions float64 `yaml:"max_dimensions" validate:"gt=0"`
	} `yaml:"limits"`
	Pricing struct {
		Divisor float64 `yaml:"divisor" validate:"gt=0"`
	} `yaml:"pricing"`
	Log struct {
		Level   string `yaml:"level" env:"PACKAGE_EXPRESS_LOG_LEVEL" validate:"oneof=debug info warn error"`
		NoColor bool   `yaml:"no_color" env:"PACKAGE_EXPRESS_LOG_NO_COLOR"`
	} `yaml:"log"`
}

// Load builds the config from the built-in defaults, the YAML file at path (skipped
// when path is empty) and logging overrides from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}

	// Defaults
	if cfg.Limits.MaxWeight == 0 {
		cfg.Limits.MaxWeight = validation.DefaultMaxWeight
	}
	if cfg.Limits.MaxDimensions == 0 {
		cfg.Limits.MaxDimensions = validation.DefaultMaxDimensions
	}
	if cfg.Pricing.Divisor == 0 {
		cfg.Pricing.Divisor = calculator.DefaultDivisor
	}
	cfg.Log.Level = NormalizeLevel(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLevel
	}

	return cfg, nil
}

// NormalizeLevel lowercases a level name and strips surrounding whitespace.
func NormalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// Validate checks that limits and divisor are positive and the log level is known.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
