// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"fmt"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/match"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/substitution"
)

// loadCatalog builds an immutable snapshot from the configured catalog
// file. Validation failures abort with every offending recipe reported.
func loadCatalog(cfg *config.Config) (*catalog.Snapshot, error) {
	var (
		snap *catalog.Snapshot
		err  error
	)
	switch cfg.Catalog.Format {
	case "csv":
		snap, err = catalog.LoadCSV(cfg.Catalog.Path)
	default:
		snap, err = catalog.LoadYAML(cfg.Catalog.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}

	metrics.SetCatalogRecipes(snap.Len())
	logging.Info().
		Str("catalog_id", snap.ID()).
		Str("path", cfg.Catalog.Path).
		Int("recipes", snap.Len()).
		Msg("Catalog loaded")
	return snap, nil
}

// loadRules loads the global substitution rule table. A missing
// rules_path is not an error; recipe-scoped hints still apply.
func loadRules(cfg *config.Config) (*substitution.RuleTable, error) {
	if cfg.Catalog.RulesPath == "" {
		return substitution.NewRuleTable(), nil
	}

	rules, err := substitution.LoadRuleTable(cfg.Catalog.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load substitution rules %s: %w", cfg.Catalog.RulesPath, err)
	}

	logging.Info().
		Str("path", cfg.Catalog.RulesPath).
		Int("rules", rules.Len()).
		Msg("Substitution rules loaded")
	return rules, nil
}

// buildEngine wires catalog, rules, and match configuration together.
func buildEngine(cfg *config.Config) (*match.Engine, error) {
	snap, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}

	resolver := substitution.NewResolver(rules, substitution.Config{
		HintScoreStart: cfg.Match.HintScoreStart,
		HintScoreStep:  cfg.Match.HintScoreStep,
	}, logging.Logger())

	return match.NewEngine(snap, resolver, match.Config{
		Workers:      cfg.Match.Workers,
		DefaultLimit: cfg.Match.DefaultLimit,
	}, logging.Logger()), nil
}
