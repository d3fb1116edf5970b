// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package config loads layered application configuration with Koanf v2.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML
// config file, environment variables. The config file is searched in
// DefaultConfigPaths unless CONFIG_PATH points elsewhere.
package config

import (
	"fmt"
	"strings"
)

// Config is the root application configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Catalog CatalogConfig `koanf:"catalog"`
	Store   StoreConfig   `koanf:"store"`
	Match   MatchConfig   `koanf:"match"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal.
	Level string `koanf:"level"`
	// Format is json or console.
	Format string `koanf:"format"`
	// Caller includes caller file and line in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates the recipe catalog and substitution rules.
type CatalogConfig struct {
	// Path is the recipe catalog file.
	Path string `koanf:"path"`
	// Format is yaml or csv.
	Format string `koanf:"format"`
	// RulesPath is the substitution rule table file (YAML). Optional;
	// without it only recipe-scoped hints resolve substitutions.
	RulesPath string `koanf:"rules_path"`
}

// StoreConfig controls persistence.
type StoreConfig struct {
	// Dir is the BadgerDB directory.
	Dir string `koanf:"dir"`
	// InMemory switches to a non-durable store; Dir is ignored.
	InMemory bool `koanf:"in_memory"`
}

// MatchConfig tunes the match engine.
type MatchConfig struct {
	// HintScoreStart is the score of a recipe hint's first alternative.
	HintScoreStart float64 `koanf:"hint_score_start"`
	// HintScoreStep is the per-rank score decrement for later hint
	// alternatives.
	HintScoreStep float64 `koanf:"hint_score_step"`
	// Workers bounds ranking parallelism. 0 means sequential, negative
	// means GOMAXPROCS.
	Workers int `koanf:"workers"`
	// DefaultLimit caps ranked results per partition when a request does
	// not set its own limit. 0 means unlimited.
	DefaultLimit int `koanf:"default_limit"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
	// ListenAddr is the metrics HTTP listen address.
	ListenAddr string `koanf:"listen_addr"`
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateMatch()
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("logging.level %q is invalid", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format %q is invalid (json or console)", c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Format {
	case "yaml", "csv":
		return nil
	default:
		return fmt.Errorf("catalog.format %q is invalid (yaml or csv)", c.Catalog.Format)
	}
}

func (c *Config) validateMatch() error {
	if c.Match.HintScoreStart <= 0 || c.Match.HintScoreStart > 1 {
		return fmt.Errorf("match.hint_score_start %v must be in (0, 1]", c.Match.HintScoreStart)
	}
	if c.Match.HintScoreStep < 0 || c.Match.HintScoreStep >= c.Match.HintScoreStart {
		return fmt.Errorf("match.hint_score_step %v must be in [0, hint_score_start)", c.Match.HintScoreStep)
	}
	if c.Match.DefaultLimit < 0 {
		return fmt.Errorf("match.default_limit must not be negative")
	}
	return nil
}
