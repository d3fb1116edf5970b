// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package shopping

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/larder/internal/match"
	"github.com/tomtom215/larder/internal/models"
)

// ErrEntryNotFound is returned when an entry key has no entry.
var ErrEntryNotFound = fmt.Errorf("shopping list entry not found")

// Entry is one line of a shopping list.
//
// Quantity is derived, never set directly: the sum of per-recipe
// contributions plus the manual portion, all in the entry's unit.
type Entry struct {
	// Key identifies the entry: ingredient name plus unit family.
	Key string `json:"key"`

	// Ingredient is the canonical ingredient name.
	Ingredient string `json:"ingredient"`

	// Unit is the entry's unit token, fixed by the first contribution.
	Unit string `json:"unit,omitempty"`

	// Quantity is the derived amount needed.
	Quantity float64 `json:"quantity"`

	// Sources maps contributing recipe ids to their contributed amount
	// (provenance). Manually created entries have no sources.
	Sources map[string]float64 `json:"sources,omitempty"`

	// Manual is the user-added portion, never touched by recipe
	// deselection.
	Manual float64 `json:"manual,omitempty"`

	// ManualAdded marks that the user created or topped up this entry
	// by hand; such entries are never auto-removed.
	ManualAdded bool `json:"manual_added,omitempty"`

	// Completed marks a checked-off entry. Completed entries are
	// retained until explicitly cleared so completion can be undone.
	Completed bool `json:"completed"`

	// UpdatedAt is the time of the last mutation touching this entry.
	UpdatedAt time.Time `json:"updated_at"`
}

// Needed returns the entry's outstanding amount. Entries fed only by
// quantity-less contributions report "some amount".
func (e *Entry) Needed() models.Quantity {
	if e.Quantity == 0 && (len(e.Sources) > 0 || e.ManualAdded) {
		return models.SomeAmount()
	}
	return models.Quantity{Value: e.Quantity, Unit: e.Unit}
}

// recompute re-derives Quantity from provenance and the manual portion.
func (e *Entry) recompute(now time.Time) {
	total := e.Manual
	for _, amount := range e.Sources {
		total += amount
	}
	e.Quantity = total
	e.UpdatedAt = now
}

// List is a user's shopping list. Mutations are atomic per entry; the
// list itself is a plain snapshot handed back to the caller to persist.
type List struct {
	// ID is the list's unique identifier.
	ID string `json:"id"`

	// UserID identifies the owning user.
	UserID string `json:"user_id"`

	// Entries maps entry keys to entries.
	Entries map[string]*Entry `json:"entries"`

	// UpdatedAt is the time of the last mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewList creates an empty shopping list for a user.
func NewList(userID string) *List {
	return &List{
		ID:      uuid.NewString(),
		UserID:  userID,
		Entries: make(map[string]*Entry),
	}
}

// EntryKey derives the map key for an ingredient and unit token.
// Ingredient identity alone is not enough: 200 g and 200 ml of the same
// name cannot sum without a guessed conversion, so each unit family gets
// its own entry.
func EntryKey(ingredient, unit string) string {
	family, _ := models.UnitFamilyOf(unit)
	return ingredient + "|" + family.String()
}

// AddFromRecipe merges a report's unresolved ingredients into the list.
//
// Only unresolved, non-optional lines contribute; items resolved via
// substitution are not added since the user already holds a usable
// alternative. The contribution per line is the shortfall (required
// minus convertible available amount), or the full requirement when
// nothing comparable is on hand. Re-adding the same recipe replaces its
// prior contributions instead of doubling them.
//
// Returns the number of entries touched.
func (l *List) AddFromRecipe(report *match.ReadinessReport, recipe *models.Recipe) (int, error) {
	if report.RecipeID != recipe.ID {
		return 0, fmt.Errorf("report recipe %q does not match recipe %q", report.RecipeID, recipe.ID)
	}

	now := time.Now().UTC()
	touched := 0

	for _, check := range report.MissingIngredients() {
		amount := contribution(check)

		key := EntryKey(check.Name, check.Required.Unit)
		entry, ok := l.Entries[key]
		if !ok {
			entry = &Entry{
				Key:        key,
				Ingredient: check.Name,
				Unit:       check.Required.Unit,
				Sources:    make(map[string]float64),
			}
			l.Entries[key] = entry
		}

		// Same family by construction of the key; conversion only fails
		// for a unitless entry meeting a united contribution, where the
		// raw amount is the best available record.
		if converted, ok := models.ConvertUnit(amount, check.Required.Unit, entry.Unit); ok {
			amount = converted
		}

		entry.Sources[recipe.ID] = amount
		entry.recompute(now)
		touched++
	}

	if touched > 0 {
		l.UpdatedAt = now
	}
	return touched, nil
}

// contribution computes how much one unresolved requirement adds: the
// shortfall against a comparable on-hand amount, else the requirement.
func contribution(check match.IngredientCheck) float64 {
	required := check.Required.Value
	if check.Required.Unspecified {
		return 0
	}

	if check.Available == nil || check.Available.Unspecified {
		return required
	}

	onHand, ok := models.ConvertUnit(check.Available.Value, check.Available.Unit, check.Required.Unit)
	if !ok {
		return required
	}

	shortfall := required - onHand
	if shortfall < 0 {
		return 0
	}
	return shortfall
}

// RemoveRecipeContribution subtracts a recipe's contributions from every
// entry it touched. Entries left with no sources and no manual portion
// are deleted, unless completed: completed entries survive until
// ClearCompleted so completion can be undone.
func (l *List) RemoveRecipeContribution(recipeID string) int {
	now := time.Now().UTC()
	touched := 0

	for key, entry := range l.Entries {
		if _, ok := entry.Sources[recipeID]; !ok {
			continue
		}

		delete(entry.Sources, recipeID)
		entry.recompute(now)
		touched++

		if len(entry.Sources) == 0 && !entry.ManualAdded && !entry.Completed {
			delete(l.Entries, key)
		}
	}

	if touched > 0 {
		l.UpdatedAt = now
	}
	return touched
}

// ToggleCompleted flips an entry's completed flag.
func (l *List) ToggleCompleted(key string) error {
	entry, ok := l.Entries[key]
	if !ok {
		return fmt.Errorf("toggle %q: %w", key, ErrEntryNotFound)
	}

	now := time.Now().UTC()
	entry.Completed = !entry.Completed
	entry.UpdatedAt = now
	l.UpdatedAt = now
	return nil
}

// AddManual adds a user-entered amount for an ingredient. Repeated adds
// accumulate. Manual entries carry no provenance and are never removed
// by recipe deselection.
func (l *List) AddManual(ingredient string, qty models.Quantity) error {
	name := models.Canonical(ingredient)
	if name == "" {
		return fmt.Errorf("empty ingredient name")
	}

	unit, err := models.NormalizeUnit(qty.Unit)
	if err != nil {
		return err
	}
	if !qty.Unspecified && qty.Value < 0 {
		return fmt.Errorf("ingredient %q: negative quantity", name)
	}

	now := time.Now().UTC()
	key := EntryKey(name, unit)

	entry, ok := l.Entries[key]
	if !ok {
		entry = &Entry{
			Key:        key,
			Ingredient: name,
			Unit:       unit,
			Sources:    make(map[string]float64),
		}
		l.Entries[key] = entry
	}

	if !qty.Unspecified {
		if converted, ok := models.ConvertUnit(qty.Value, unit, entry.Unit); ok {
			entry.Manual += converted
		} else {
			entry.Manual += qty.Value
		}
	}
	entry.ManualAdded = true
	entry.recompute(now)
	l.UpdatedAt = now
	return nil
}

// RemoveManual clears the manual portion of every entry for an
// ingredient. Entries left with no sources are deleted unless completed.
func (l *List) RemoveManual(ingredient string) int {
	name := models.Canonical(ingredient)
	now := time.Now().UTC()
	touched := 0

	for key, entry := range l.Entries {
		if entry.Ingredient != name || !entry.ManualAdded {
			continue
		}

		entry.Manual = 0
		entry.ManualAdded = false
		entry.recompute(now)
		touched++

		if len(entry.Sources) == 0 && !entry.Completed {
			delete(l.Entries, key)
		}
	}

	if touched > 0 {
		l.UpdatedAt = now
	}
	return touched
}

// ClearCompleted deletes every completed entry, returning the count.
func (l *List) ClearCompleted() int {
	removed := 0
	for key, entry := range l.Entries {
		if entry.Completed {
			delete(l.Entries, key)
			removed++
		}
	}
	if removed > 0 {
		l.UpdatedAt = time.Now().UTC()
	}
	return removed
}

// Sorted returns entries in deterministic key order for display and
// serialization.
func (l *List) Sorted() []*Entry {
	out := make([]*Entry, 0, len(l.Entries))
	for _, entry := range l.Entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Clone returns a deep copy, used to hand callers a snapshot to persist.
func (l *List) Clone() *List {
	cp := &List{
		ID:        l.ID,
		UserID:    l.UserID,
		Entries:   make(map[string]*Entry, len(l.Entries)),
		UpdatedAt: l.UpdatedAt,
	}
	for key, entry := range l.Entries {
		e := *entry
		e.Sources = make(map[string]float64, len(entry.Sources))
		for rid, amount := range entry.Sources {
			e.Sources[rid] = amount
		}
		cp.Entries[key] = &e
	}
	return cp
}
