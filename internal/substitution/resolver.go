// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package substitution

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/models"
)

// Resolver answers "what can stand in for this ingredient or tool".
// It is stateless apart from its immutable rule table and is safe for
// concurrent use.
type Resolver struct {
	global *RuleTable

	hintScoreStart float64
	hintScoreStep  float64

	logger zerolog.Logger
}

// Config tunes how recipe-scoped hints map to scores.
type Config struct {
	// HintScoreStart is the score assigned to the first (best) hint
	// alternative. Default 0.9.
	HintScoreStart float64

	// HintScoreStep is subtracted per rank for subsequent alternatives.
	// Default 0.05. Scores never go below zero.
	HintScoreStep float64
}

// DefaultConfig returns the default hint scoring parameters.
func DefaultConfig() Config {
	return Config{
		HintScoreStart: 0.9,
		HintScoreStep:  0.05,
	}
}

// NewResolver creates a resolver over a global rule table. A nil table
// means no global rules; recipe hints still resolve.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(global *RuleTable, cfg Config, logger zerolog.Logger) *Resolver {
	if cfg.HintScoreStart <= 0 || cfg.HintScoreStart > 1 {
		cfg.HintScoreStart = 0.9
	}
	if cfg.HintScoreStep <= 0 {
		cfg.HintScoreStep = 0.05
	}
	if global == nil {
		global = NewRuleTable()
	}

	return &Resolver{
		global:         global,
		hintScoreStart: cfg.HintScoreStart,
		hintScoreStep:  cfg.HintScoreStep,
		logger:         logger.With().Str("component", "substitution").Logger(),
	}
}

// Resolve returns ranked alternatives for a target within a context.
//
// Recipe-scoped hints come first, preserving author order with
// descending scores from HintScoreStart. Global rules not already listed
// are appended with their table scores. The target itself is never
// returned, and alternatives in the exclusion set are filtered out.
//
// An empty result is the normal "no known swap" answer, not an error.
// The recipe may be nil (no scoped hints); exclusions may be nil.
func (r *Resolver) Resolve(
	target string,
	ctx models.SubstitutionContext,
	recipe *models.Recipe,
	exclusions map[string]struct{},
) []Alternative {
	target = models.Canonical(target)
	if target == "" {
		return nil
	}

	var out []Alternative
	seen := map[string]struct{}{target: {}}

	keep := func(alt Alternative) {
		if _, dup := seen[alt.Name]; dup {
			return
		}
		seen[alt.Name] = struct{}{}
		if _, excluded := exclusions[alt.Name]; excluded {
			return
		}
		out = append(out, alt)
	}

	// Recipe-scoped hints take precedence over the global table.
	if recipe != nil {
		for _, hint := range recipe.Hints {
			if hint.Context != ctx || hint.For != target {
				continue
			}
			score := r.hintScoreStart
			for _, name := range hint.Alternatives {
				keep(Alternative{Name: name, Score: score})
				score -= r.hintScoreStep
				if score < 0 {
					score = 0
				}
			}
		}
	}

	for _, alt := range r.global.Lookup(ctx, target) {
		keep(alt)
	}

	if len(out) > 0 {
		r.logger.Debug().
			Str("target", target).
			Str("context", ctx.String()).
			Int("alternatives", len(out)).
			Msg("resolved substitution candidates")
	}

	return out
}
