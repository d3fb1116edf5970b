// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package match

import (
	"time"

	"github.com/tomtom215/larder/internal/models"
)

// Status classifies a recipe's readiness against an inventory.
type Status int

const (
	// StatusReady means every tool is owned and every required
	// ingredient is directly available.
	StatusReady Status = iota
	// StatusReadyWithSubstitution means the recipe is cookable but at
	// least one requirement went through a substitution.
	StatusReadyWithSubstitution
	// StatusMissing means at least one required ingredient or tool has
	// no direct or substitute resolution.
	StatusMissing
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusReadyWithSubstitution:
		return "ready_with_substitution"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its string tag for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution describes how one requirement was satisfied.
type Resolution int

const (
	// ResolvedDirect means the requirement is met from inventory as-is.
	ResolvedDirect Resolution = iota
	// ResolvedSubstitution means an available alternative covers it.
	ResolvedSubstitution
	// Unresolved means nothing in inventory covers the requirement.
	Unresolved
	// SkippedOptional means an optional requirement is unavailable and
	// was waived.
	SkippedOptional
)

// String returns a human-readable resolution name.
func (r Resolution) String() string {
	switch r {
	case ResolvedDirect:
		return "none"
	case ResolvedSubstitution:
		return "substitution"
	case Unresolved:
		return "unresolved"
	case SkippedOptional:
		return "skipped_optional"
	default:
		return "unknown"
	}
}

// MarshalText encodes the resolution as its string tag for JSON output.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// IngredientCheck is the per-ingredient line of a readiness report.
type IngredientCheck struct {
	// Name is the canonical ingredient name from the recipe.
	Name string `json:"name"`

	// Required is the recipe's requested amount.
	Required models.Quantity `json:"required"`

	// Available is the inventory amount, nil when the ingredient is
	// absent from the pantry.
	Available *models.Quantity `json:"available,omitempty"`

	// Resolution records how (or whether) the requirement was met.
	Resolution Resolution `json:"resolved_via"`

	// Substitute is the alternative used when Resolution is
	// ResolvedSubstitution.
	Substitute string `json:"substitute,omitempty"`

	// SubstitutionScore is the compatibility score of the substitute.
	SubstitutionScore float64 `json:"substitution_score,omitempty"`

	// Optional mirrors the recipe's optional flag.
	Optional bool `json:"optional,omitempty"`

	// Excluded reports that the ingredient is on the user's exclusion
	// list; exclusion overrides physical presence.
	Excluded bool `json:"excluded,omitempty"`

	// UnitIncompatible flags a cross-family quantity comparison. The
	// engine refuses to guess a conversion and leaves the requirement
	// unresolved instead.
	UnitIncompatible bool `json:"unit_incompatible,omitempty"`
}

// ToolCheck is the per-tool line of a readiness report.
type ToolCheck struct {
	// Name is the canonical tool name from the recipe.
	Name string `json:"name"`

	// Owned reports direct ownership.
	Owned bool `json:"owned"`

	// Substitute is the owned alternative covering a missing tool.
	Substitute string `json:"substitute,omitempty"`

	// SubstitutionScore is the compatibility score of the substitute.
	SubstitutionScore float64 `json:"substitution_score,omitempty"`
}

// ReadinessReport is the derived, per-request result of evaluating one
// recipe against one inventory. Reports are ephemeral: recomputed per
// request and never persisted.
type ReadinessReport struct {
	// RecipeID identifies the evaluated recipe.
	RecipeID string `json:"recipe_id"`

	// RecipeName is the display title, carried for presentation.
	RecipeName string `json:"recipe_name"`

	// Status is the readiness classification.
	Status Status `json:"status"`

	// Score is the ranking score in [0, 1]. See the package comment for
	// the per-status formula.
	Score float64 `json:"score"`

	// ToolCompatible reports that every required tool is owned directly
	// or covered by an owned substitute.
	ToolCompatible bool `json:"tool_compatible"`

	// ToolsViaSubstitution reports that tool compatibility required at
	// least one substitution.
	ToolsViaSubstitution bool `json:"tools_via_substitution,omitempty"`

	// Ingredients holds one check per recipe ingredient.
	Ingredients []IngredientCheck `json:"ingredients"`

	// Tools holds one check per required tool.
	Tools []ToolCheck `json:"tools,omitempty"`
}

// MissingIngredients returns the unresolved, non-optional ingredient
// checks: the lines a shopping list is built from. Items resolved via
// substitution are not missing; the user already holds a usable
// alternative.
func (r *ReadinessReport) MissingIngredients() []IngredientCheck {
	var out []IngredientCheck
	for _, check := range r.Ingredients {
		if check.Resolution == Unresolved && !check.Optional {
			out = append(out, check)
		}
	}
	return out
}

// RankRequest parameterizes a catalog-wide ranking.
type RankRequest struct {
	// Limit caps the number of reports returned per partition.
	// Zero means no cap.
	Limit int `json:"limit,omitempty"`
}

// RankResult is the ordered outcome of ranking a catalog snapshot.
// Best holds cookable recipes (Ready and ReadyWithSubstitution);
// Suggestions holds Missing recipes, still ordered by score, for
// "you could almost make this" display.
type RankResult struct {
	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id"`

	// CatalogID is the snapshot version the ranking was computed from.
	CatalogID string `json:"catalog_id"`

	// GeneratedAt is when the ranking was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalCandidates is the number of recipes evaluated.
	TotalCandidates int `json:"total_candidates"`

	// Best holds Ready and ReadyWithSubstitution reports, best first.
	Best []ReadinessReport `json:"best"`

	// Suggestions holds Missing reports, best first.
	Suggestions []ReadinessReport `json:"suggestions"`
}
