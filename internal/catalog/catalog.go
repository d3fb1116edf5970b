// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/larder/internal/models"
	"github.com/tomtom215/larder/internal/validation"
)

// ErrRecipeNotFound is returned when a requested recipe id is absent.
var ErrRecipeNotFound = errors.New("recipe not found")

// ValidationError describes one ingestion rule violation in a recipe.
type ValidationError struct {
	// RecipeID identifies the offending recipe ("" when the id itself
	// is the problem).
	RecipeID string

	// Field names the offending field or hint.
	Field string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.RecipeID == "" {
		return fmt.Sprintf("catalog: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("catalog: recipe %q: %s: %s", e.RecipeID, e.Field, e.Message)
}

// Snapshot is an immutable, versioned view of the recipe catalog.
// Once built it is never mutated; the engine holds it by reference and
// evaluates against it concurrently without locking.
type Snapshot struct {
	id      string
	builtAt time.Time

	byID    map[string]*models.Recipe
	ordered []*models.Recipe
}

// ID returns the snapshot's unique version identifier.
func (s *Snapshot) ID() string {
	return s.id
}

// BuiltAt returns when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Len returns the number of recipes in the catalog.
func (s *Snapshot) Len() int {
	return len(s.ordered)
}

// Recipe looks up a recipe by id. Returns ErrRecipeNotFound (wrapped with
// the id) when absent; callers test with errors.Is.
func (s *Snapshot) Recipe(id string) (*models.Recipe, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipe %q: %w", id, ErrRecipeNotFound)
	}
	return r, nil
}

// Recipes enumerates all recipes in ascending id order. Callers must not
// mutate the returned recipes; use Clone or ApplySubstitution for
// derived copies.
func (s *Snapshot) Recipes() []*models.Recipe {
	return s.ordered
}

// Build validates and normalizes recipes into a snapshot.
//
// All violations across all recipes are collected and returned joined,
// so a bad catalog file surfaces every problem in one pass. The input
// slice is not retained; recipes are deep-copied and normalized.
func Build(recipes []models.Recipe) (*Snapshot, error) {
	snap := &Snapshot{
		id:      uuid.NewString(),
		builtAt: time.Now().UTC(),
		byID:    make(map[string]*models.Recipe, len(recipes)),
	}

	var errs []error
	for i := range recipes {
		r, rerrs := normalizeRecipe(&recipes[i])
		if len(rerrs) > 0 {
			errs = append(errs, rerrs...)
			continue
		}

		if _, dup := snap.byID[r.ID]; dup {
			errs = append(errs, &ValidationError{
				RecipeID: r.ID,
				Field:    "id",
				Message:  "duplicate recipe id",
			})
			continue
		}

		snap.byID[r.ID] = r
		snap.ordered = append(snap.ordered, r)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(snap.ordered, func(i, j int) bool {
		return snap.ordered[i].ID < snap.ordered[j].ID
	})

	return snap, nil
}

// normalizeRecipe canonicalizes a recipe copy and checks the ingestion
// rules. Returns the normalized copy and any violations found.
func normalizeRecipe(in *models.Recipe) (*models.Recipe, []error) {
	var errs []error

	r := in.Clone()
	if verr := validation.ValidateStruct(r); verr != nil {
		fieldErrs := verr.Errors()
		for i := range fieldErrs {
			errs = append(errs, &ValidationError{
				RecipeID: in.ID,
				Field:    fieldErrs[i].Field(),
				Message:  fieldErrs[i].Error(),
			})
		}
		return nil, errs
	}

	ingredientSet := make(map[string]struct{}, len(r.Ingredients))
	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		ing.Name = models.Canonical(ing.Name)
		if _, dup := ingredientSet[ing.Name]; dup {
			errs = append(errs, &ValidationError{
				RecipeID: r.ID,
				Field:    fmt.Sprintf("ingredients[%d]", i),
				Message:  fmt.Sprintf("duplicate ingredient %q", ing.Name),
			})
			continue
		}
		ingredientSet[ing.Name] = struct{}{}

		// Unit tokens passed the struct validator, so normalization
		// cannot fail here.
		ing.Unit, _ = models.NormalizeUnit(ing.Unit)

		if ing.Unit != "" && ing.Quantity <= 0 {
			errs = append(errs, &ValidationError{
				RecipeID: r.ID,
				Field:    fmt.Sprintf("ingredients[%d]", i),
				Message:  fmt.Sprintf("ingredient %q: quantity must be positive when a unit is specified", ing.Name),
			})
		}
		if ing.Unit == "" && ing.Quantity < 0 {
			errs = append(errs, &ValidationError{
				RecipeID: r.ID,
				Field:    fmt.Sprintf("ingredients[%d]", i),
				Message:  fmt.Sprintf("ingredient %q: negative quantity", ing.Name),
			})
		}
	}

	toolSet := make(map[string]struct{}, len(r.Tools))
	for i, tool := range r.Tools {
		r.Tools[i] = models.Canonical(tool)
		toolSet[r.Tools[i]] = struct{}{}
	}

	for i := range r.Hints {
		hint := &r.Hints[i]
		hint.For = models.Canonical(hint.For)
		for j, alt := range hint.Alternatives {
			hint.Alternatives[j] = models.Canonical(alt)
		}

		// Referential integrity: a hint must target something the
		// recipe actually uses.
		switch hint.Context {
		case models.ContextIngredient:
			if _, ok := ingredientSet[hint.For]; !ok {
				errs = append(errs, &ValidationError{
					RecipeID: r.ID,
					Field:    fmt.Sprintf("hints[%d]", i),
					Message:  fmt.Sprintf("hint targets ingredient %q not present in recipe", hint.For),
				})
			}
		case models.ContextTool:
			if _, ok := toolSet[hint.For]; !ok {
				errs = append(errs, &ValidationError{
					RecipeID: r.ID,
					Field:    fmt.Sprintf("hints[%d]", i),
					Message:  fmt.Sprintf("hint targets tool %q not present in recipe", hint.For),
				})
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return r, nil
}
