// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package models

import (
	"fmt"
	"sort"
)

// InventoryProfile is a user's declared kitchen state: ingredients with
// optional quantities, owned tools, and excluded ingredients.
//
// Exclusions are a hard constraint. An excluded ingredient is never
// consumed by matching even when physically present; a recipe requiring
// it is only satisfiable through a non-excluded substitute.
//
// Profiles are mutated only through the explicit Add/Remove operations
// below; the match engine takes a read snapshot and never writes back.
// Persistence across sessions is the store's concern, not this type's.
type InventoryProfile struct {
	// UserID identifies the owning user session or account.
	UserID string `json:"user_id"`

	// Ingredients maps canonical ingredient names to available amounts.
	Ingredients map[string]Quantity `json:"ingredients"`

	// Tools is the set of owned tool names.
	Tools map[string]struct{} `json:"tools"`

	// Exclusions is the set of ingredient names the user refuses.
	Exclusions map[string]struct{} `json:"exclusions"`
}

// NewInventoryProfile creates an empty profile for a user.
func NewInventoryProfile(userID string) *InventoryProfile {
	return &InventoryProfile{
		UserID:      userID,
		Ingredients: make(map[string]Quantity),
		Tools:       make(map[string]struct{}),
		Exclusions:  make(map[string]struct{}),
	}
}

// AddIngredient records an available ingredient. The name is normalized
// here; callers pass raw user input. A repeated add replaces the prior
// quantity (no implicit accumulation).
func (p *InventoryProfile) AddIngredient(name string, qty Quantity) error {
	c := Canonical(name)
	if c == "" {
		return fmt.Errorf("empty ingredient name")
	}

	tok, err := NormalizeUnit(qty.Unit)
	if err != nil {
		return fmt.Errorf("ingredient %q: %w", c, err)
	}
	qty.Unit = tok

	if !qty.Unspecified && qty.Value < 0 {
		return fmt.Errorf("ingredient %q: negative quantity", c)
	}

	p.Ingredients[c] = qty
	return nil
}

// AddSomeIngredient records an ingredient with an unspecified amount.
func (p *InventoryProfile) AddSomeIngredient(name string) error {
	return p.AddIngredient(name, SomeAmount())
}

// RemoveIngredient deletes an ingredient entry. Removing an absent entry
// is a no-op.
func (p *InventoryProfile) RemoveIngredient(name string) {
	delete(p.Ingredients, Canonical(name))
}

// Quantity returns the available amount for a canonical name.
func (p *InventoryProfile) Quantity(name string) (Quantity, bool) {
	q, ok := p.Ingredients[Canonical(name)]
	return q, ok
}

// AddTool records an owned tool.
func (p *InventoryProfile) AddTool(name string) error {
	c := Canonical(name)
	if c == "" {
		return fmt.Errorf("empty tool name")
	}
	p.Tools[c] = struct{}{}
	return nil
}

// RemoveTool deletes a tool. Removing an absent tool is a no-op.
func (p *InventoryProfile) RemoveTool(name string) {
	delete(p.Tools, Canonical(name))
}

// OwnsTool reports whether the user owns the tool.
func (p *InventoryProfile) OwnsTool(name string) bool {
	_, ok := p.Tools[Canonical(name)]
	return ok
}

// Exclude marks an ingredient as refused. Exclusion does not remove the
// ingredient from the available set; exclusion overrides presence during
// matching instead.
func (p *InventoryProfile) Exclude(name string) error {
	c := Canonical(name)
	if c == "" {
		return fmt.Errorf("empty ingredient name")
	}
	p.Exclusions[c] = struct{}{}
	return nil
}

// Unexclude clears an exclusion. Clearing an absent exclusion is a no-op.
func (p *InventoryProfile) Unexclude(name string) {
	delete(p.Exclusions, Canonical(name))
}

// Excluded reports whether an ingredient is excluded.
func (p *InventoryProfile) Excluded(name string) bool {
	_, ok := p.Exclusions[Canonical(name)]
	return ok
}

// Clone returns a deep copy, used to hand the engine a read snapshot.
func (p *InventoryProfile) Clone() *InventoryProfile {
	cp := NewInventoryProfile(p.UserID)
	for k, v := range p.Ingredients {
		cp.Ingredients[k] = v
	}
	for k := range p.Tools {
		cp.Tools[k] = struct{}{}
	}
	for k := range p.Exclusions {
		cp.Exclusions[k] = struct{}{}
	}
	return cp
}

// IngredientNames returns the available ingredient names in sorted order,
// for deterministic logging and CLI output.
func (p *InventoryProfile) IngredientNames() []string {
	names := make([]string, 0, len(p.Ingredients))
	for name := range p.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
