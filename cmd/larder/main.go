// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package main is the entry point for the larder command line tool.
//
// Larder matches a user's pantry (ingredients, tools, exclusions)
// against a recipe catalog and reports what can be cooked now, what
// works with substitutions, and what to buy for the rest.
//
// # Commands
//
//	larder recipes                     List the catalog
//	larder inventory <subcommand>      Manage the pantry profile
//	larder evaluate --recipe <id>      Evaluate one recipe
//	larder rank [--limit N]            Rank the whole catalog
//	larder shopping <subcommand>       Manage the shopping list
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (LARDER_*)
//   - Config file (larder.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Key settings:
//   - LARDER_CATALOG_PATH: recipe catalog file (YAML or CSV)
//   - LARDER_CATALOG_FORMAT: yaml or csv
//   - LARDER_CATALOG_RULES_PATH: substitution rule table (YAML)
//   - LARDER_STORE_DIR: BadgerDB directory for profiles and lists
//   - LARDER_METRICS_ENABLED: expose Prometheus metrics over HTTP
//
// # Example Usage
//
//	export LARDER_CATALOG_PATH=recipes.yaml
//	larder inventory add --user alice --ingredient flour --quantity 500 --unit g
//	larder inventory add-tool --user alice --tool oven
//	larder rank --user alice --limit 10
//	larder shopping add --user alice --recipe pancakes
package main

import (
	"os"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	stopMetrics := startMetrics(cfg)

	if err := rootCmd(cfg).Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		stopMetrics()
		os.Exit(1)
	}
	stopMetrics()
}
