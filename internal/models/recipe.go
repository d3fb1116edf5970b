// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SubstitutionContext tags whether a substitution applies to an
// ingredient or to a tool.
type SubstitutionContext int

const (
	// ContextIngredient marks a substitution between ingredients.
	ContextIngredient SubstitutionContext = iota
	// ContextTool marks a substitution between tools.
	ContextTool
)

// String returns a human-readable context name.
func (c SubstitutionContext) String() string {
	switch c {
	case ContextIngredient:
		return "ingredient"
	case ContextTool:
		return "tool"
	default:
		return "unknown"
	}
}

// ParseSubstitutionContext parses a context tag from its string form.
func ParseSubstitutionContext(s string) (SubstitutionContext, bool) {
	switch Canonical(s) {
	case "ingredient", "":
		return ContextIngredient, true
	case "tool":
		return ContextTool, true
	default:
		return ContextIngredient, false
	}
}

// MarshalText encodes the context as its string tag for JSON output.
func (c SubstitutionContext) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a context from its string tag.
func (c *SubstitutionContext) UnmarshalText(text []byte) error {
	parsed, ok := ParseSubstitutionContext(string(text))
	if !ok {
		return fmt.Errorf("unrecognized substitution context %q", string(text))
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the context as its string tag for YAML catalogs.
func (c SubstitutionContext) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a context from a YAML string tag.
func (c *SubstitutionContext) UnmarshalYAML(node *yaml.Node) error {
	var tag string
	if err := node.Decode(&tag); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(tag))
}

// RecipeIngredient is one requirement line in a recipe.
// Names and unit tokens are canonical once the recipe passes catalog
// validation.
type RecipeIngredient struct {
	// Name is the canonical ingredient name.
	Name string `json:"name" yaml:"name" validate:"canonical"`

	// Quantity is the required amount. Must be positive when Unit is set.
	Quantity float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`

	// Unit is the canonical unit token ("" means quantity-less presence).
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty" validate:"unit"`

	// Optional requirements never force a recipe to Missing.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

	// Strict marks a minimum-quantity threshold: an inventory entry with
	// an unspecified amount does not satisfy a strict requirement.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// SubstitutionHint is an author-declared, recipe-scoped substitution.
// Alternatives are ordered best-first; the resolver assigns descending
// scores by rank.
type SubstitutionHint struct {
	// For is the canonical name of the ingredient or tool being replaced.
	For string `json:"for" yaml:"for" validate:"canonical"`

	// Context tags whether For names an ingredient or a tool.
	Context SubstitutionContext `json:"context" yaml:"context"`

	// Alternatives is the ordered list of canonical replacement names.
	Alternatives []string `json:"alternatives" yaml:"alternatives" validate:"required,min=1,dive,canonical"`
}

// Recipe is an immutable catalog entry. Once a recipe is published into a
// catalog snapshot it is never mutated; derived recipes (ingredient
// swaps) are fresh copies.
type Recipe struct {
	// ID uniquely identifies the recipe within a catalog.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Name is the display title.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Category and Subcategory are opaque display metadata.
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`

	// Description is opaque display metadata.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Steps is the ordered preparation text. The engine never interprets
	// step contents.
	Steps []string `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Ingredients are the requirement lines.
	Ingredients []RecipeIngredient `json:"ingredients" yaml:"ingredients" validate:"dive"`

	// Tools are canonical names of required equipment.
	Tools []string `json:"tools,omitempty" yaml:"tools,omitempty" validate:"dive,canonical"`

	// Hints are author-declared substitutions scoped to this recipe.
	Hints []SubstitutionHint `json:"hints,omitempty" yaml:"hints,omitempty" validate:"dive"`
}

// Ingredient returns the requirement line for a canonical name, or nil.
func (r *Recipe) Ingredient(name string) *RecipeIngredient {
	for i := range r.Ingredients {
		if r.Ingredients[i].Name == name {
			return &r.Ingredients[i]
		}
	}
	return nil
}

// RequiresTool reports whether the recipe requires the given tool.
func (r *Recipe) RequiresTool(name string) bool {
	for _, t := range r.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Steps = append([]string(nil), r.Steps...)
	cp.Ingredients = append([]RecipeIngredient(nil), r.Ingredients...)
	cp.Tools = append([]string(nil), r.Tools...)
	cp.Hints = make([]SubstitutionHint, len(r.Hints))
	for i, h := range r.Hints {
		cp.Hints[i] = h
		cp.Hints[i].Alternatives = append([]string(nil), h.Alternatives...)
	}
	return &cp
}
