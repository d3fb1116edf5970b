// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"larder.yaml",
	"larder.yml",
	"/etc/larder/config.yaml",
	"/etc/larder/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces Larder's environment variables.
const envPrefix = "LARDER_"

// defaultConfig returns a Config with all defaults applied. These load
// first and are overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:      "recipes.yaml",
			Format:    "yaml",
			RulesPath: "",
		},
		Store: StoreConfig{
			Dir:      "/data/larder",
			InMemory: false,
		},
		Match: MatchConfig{
			HintScoreStart: 0.9,
			HintScoreStep:  0.05,
			Workers:        0,
			DefaultLimit:   0,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: ":9090",
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values from defaultConfig
//  2. Config file: optional YAML file (if one is found)
//  3. Environment variables: LARDER_* overrides any setting
//
// Precedence: ENV > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// LARDER_CATALOG_PATH -> catalog.path
	// LARDER_MATCH_HINT_SCORE_START -> match.hint_score_start
	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, honoring CONFIG_PATH first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps environment variable names to koanf paths. The
// section name is the first underscore-delimited token; the rest of the
// name keeps its underscores, matching the koanf struct tags.
//
//	LARDER_LOGGING_LEVEL           -> logging.level
//	LARDER_CATALOG_RULES_PATH      -> catalog.rules_path
//	LARDER_STORE_IN_MEMORY         -> store.in_memory
//	LARDER_MATCH_HINT_SCORE_START  -> match.hint_score_start
//	LARDER_METRICS_LISTEN_ADDR     -> metrics.listen_addr
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	section, rest, found := strings.Cut(key, "_")
	if !found {
		return section
	}
	return section + "." + rest
}
