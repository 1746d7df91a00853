// Copyright (c) 2023 Colin McRae

// Package config loads the TOML configuration of the ratrecon command
package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPrecision   = 1000
	DefaultConcurrency = 4
	DefaultLogLevel    = "info"
)

type LogConfig struct {
	Level       string
	Development bool
}

type Config struct {
	// Precision is the number of bits kept when parsing decimal approximations
	Precision int64

	// Bound is the default denominator bound, a decimal integer. Empty means
	// commands must be given a bound.
	Bound string

	// Concurrency limits how many problems a batch reconstructs at once
	Concurrency int

	Log LogConfig
}

type fileConfig struct {
	Precision   int64  `toml:"precision"`
	Bound       string `toml:"bound"`
	Concurrency int    `toml:"concurrency"`
	Log         struct {
		Level       string `toml:"level"`
		Development bool   `toml:"development"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Precision:   DefaultPrecision,
		Concurrency: DefaultConcurrency,
		Log:         LogConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig reads path over the defaults and validates the result. Keys
// missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("precision") {
		cfg.Precision = raw.Precision
	}
	if meta.IsDefined("bound") {
		cfg.Bound = strings.TrimSpace(raw.Bound)
	}
	if meta.IsDefined("concurrency") {
		cfg.Concurrency = raw.Concurrency
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "development") {
		cfg.Log.Development = raw.Log.Development
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig reports the first invalid setting in cfg
func ValidateConfig(cfg Config) error {
	if cfg.Precision <= 0 {
		return fmt.Errorf("invalid config: precision = %d must be positive", cfg.Precision)
	}
	if cfg.Concurrency <= 0 {
		return fmt.Errorf("invalid config: concurrency = %d must be positive", cfg.Concurrency)
	}
	if cfg.Bound != "" {
		if _, err := cfg.ParseBound(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// ParseBound returns Bound as an integer. It is an error for Bound to be
// empty or not a positive decimal integer.
func (cfg Config) ParseBound() (*big.Int, error) {
	if cfg.Bound == "" {
		return nil, fmt.Errorf("bound is not set")
	}
	bound, ok := big.NewInt(0).SetString(cfg.Bound, 10)
	if !ok {
		return nil, fmt.Errorf("bound = %q is not a decimal integer", cfg.Bound)
	}
	if bound.Sign() <= 0 {
		return nil, fmt.Errorf("bound = %s must be positive", cfg.Bound)
	}
	return bound, nil
}
