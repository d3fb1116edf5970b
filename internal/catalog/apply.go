// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"fmt"

	"github.com/tomtom215/larder/internal/models"
)

// ApplySubstitution returns a copy of a recipe with one ingredient
// swapped for another, preserving quantity, unit, and flags. The source
// recipe is never mutated; catalog entries stay immutable.
//
// Hints are adjusted to keep referential integrity: hints targeting the
// replaced ingredient are dropped (the swap they suggested has happened),
// and the replacement is pruned from remaining alternative lists so no
// hint proposes swapping an ingredient for itself.
func ApplySubstitution(recipe *models.Recipe, from, to string) (*models.Recipe, error) {
	from = models.Canonical(from)
	to = models.Canonical(to)

	if from == "" || to == "" {
		return nil, fmt.Errorf("apply substitution: empty ingredient name")
	}
	if from == to {
		return nil, fmt.Errorf("apply substitution: %q and replacement are the same ingredient", from)
	}
	if recipe.Ingredient(from) == nil {
		return nil, fmt.Errorf("apply substitution: recipe %q has no ingredient %q", recipe.ID, from)
	}
	if recipe.Ingredient(to) != nil {
		return nil, fmt.Errorf("apply substitution: recipe %q already contains %q", recipe.ID, to)
	}

	out := recipe.Clone()
	out.Ingredient(from).Name = to

	hints := out.Hints[:0]
	for _, hint := range out.Hints {
		if hint.Context == models.ContextIngredient && hint.For == from {
			continue
		}

		alts := hint.Alternatives[:0]
		for _, alt := range hint.Alternatives {
			if alt != to {
				alts = append(alts, alt)
			}
		}
		if len(alts) == 0 {
			continue
		}
		hint.Alternatives = alts
		hints = append(hints, hint)
	}
	out.Hints = hints

	return out, nil
}
