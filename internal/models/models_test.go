// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package models

import (
	"math"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Flour", want: "flour"},
		{name: "trims whitespace", input: "  olive oil  ", want: "olive oil"},
		{name: "collapses internal whitespace", input: "olive\t\n oil", want: "olive oil"},
		{name: "case folds sharp s", input: "Weißmehl", want: "weissmehl"},
		{name: "nfkc collapses ligature", input: "ﬂour", want: "flour"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.input); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple list", input: "Flour, Milk,eggs", want: []string{"flour", "milk", "eggs"}},
		{name: "drops empties", input: "flour,, ,milk", want: []string{"flour", "milk"}},
		{name: "empty input", input: "", want: nil},
		{name: "only separators", input: " , , ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnitFamilyOf(t *testing.T) {
	tests := []struct {
		unit   string
		want   UnitFamily
		wantOK bool
	}{
		{unit: "", want: FamilyNone, wantOK: true},
		{unit: "g", want: FamilyMass, wantOK: true},
		{unit: "KG", want: FamilyMass, wantOK: true},
		{unit: "grams", want: FamilyMass, wantOK: true},
		{unit: "ml", want: FamilyVolume, wantOK: true},
		{unit: "Tablespoons", want: FamilyVolume, wantOK: true},
		{unit: "piece", want: FamilyCount, wantOK: true},
		{unit: "dozen", want: FamilyCount, wantOK: true},
		{unit: "furlong", want: FamilyNone, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := UnitFamilyOf(tt.unit)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("UnitFamilyOf(%q) = (%v, %v), want (%v, %v)",
					tt.unit, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConvertUnit(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		from   string
		to     string
		want   float64
		wantOK bool
	}{
		{name: "kg to g", value: 1.5, from: "kg", to: "g", want: 1500, wantOK: true},
		{name: "l to ml", value: 0.25, from: "l", to: "ml", want: 250, wantOK: true},
		{name: "tbsp to tsp", value: 1, from: "tbsp", to: "tsp", want: 3, wantOK: true},
		{name: "dozen to piece", value: 2, from: "dozen", to: "piece", want: 24, wantOK: true},
		{name: "identity unitless", value: 3, from: "", to: "", want: 3, wantOK: true},
		{name: "mass to volume fails", value: 100, from: "g", to: "ml", wantOK: false},
		{name: "mass to count fails", value: 100, from: "g", to: "piece", wantOK: false},
		{name: "unitless to unit fails", value: 1, from: "", to: "g", wantOK: false},
		{name: "unknown unit fails", value: 1, from: "smidgen", to: "g", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertUnit(tt.value, tt.from, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ConvertUnit(%v, %q, %q) ok = %v, want %v",
					tt.value, tt.from, tt.to, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ConvertUnit(%v, %q, %q) = %v, want %v",
					tt.value, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestInventoryProfile_Mutations(t *testing.T) {
	p := NewInventoryProfile("u1")

	if err := p.AddIngredient("  Flour ", Quantity{Value: 500, Unit: "G"}); err != nil {
		t.Fatalf("AddIngredient() error = %v", err)
	}
	q, ok := p.Quantity("flour")
	if !ok {
		t.Fatal("Quantity(flour) not found after add")
	}
	if q.Value != 500 || q.Unit != "g" {
		t.Errorf("Quantity(flour) = %+v, want 500 g", q)
	}

	// Repeated add replaces the prior quantity.
	if err := p.AddSomeIngredient("flour"); err != nil {
		t.Fatalf("AddSomeIngredient() error = %v", err)
	}
	q, _ = p.Quantity("Flour")
	if !q.Unspecified {
		t.Errorf("Quantity(flour).Unspecified = false, want true after replace")
	}

	if err := p.AddIngredient("", SomeAmount()); err == nil {
		t.Error("AddIngredient(\"\") error = nil, want error")
	}
	if err := p.AddIngredient("salt", Quantity{Value: -1, Unit: "g"}); err == nil {
		t.Error("AddIngredient(negative) error = nil, want error")
	}
	if err := p.AddIngredient("sugar", Quantity{Value: 1, Unit: "smidgen"}); err == nil {
		t.Error("AddIngredient(bad unit) error = nil, want error")
	}

	if err := p.AddTool("Stand Mixer"); err != nil {
		t.Fatalf("AddTool() error = %v", err)
	}
	if !p.OwnsTool("stand  mixer") {
		t.Error("OwnsTool(stand mixer) = false after add")
	}
	p.RemoveTool("STAND MIXER")
	if p.OwnsTool("stand mixer") {
		t.Error("OwnsTool(stand mixer) = true after remove")
	}

	if err := p.Exclude("Peanuts"); err != nil {
		t.Fatalf("Exclude() error = %v", err)
	}
	if !p.Excluded("peanuts") {
		t.Error("Excluded(peanuts) = false after exclude")
	}
	p.Unexclude("peanuts")
	if p.Excluded("peanuts") {
		t.Error("Excluded(peanuts) = true after unexclude")
	}

	p.RemoveIngredient("flour")
	if _, ok := p.Quantity("flour"); ok {
		t.Error("Quantity(flour) found after remove")
	}
	// Removing an absent entry is a no-op.
	p.RemoveIngredient("flour")
}

func TestInventoryProfile_CloneIsolation(t *testing.T) {
	p := NewInventoryProfile("u1")
	if err := p.AddIngredient("flour", Quantity{Value: 100, Unit: "g"}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTool("oven"); err != nil {
		t.Fatal(err)
	}
	if err := p.Exclude("peanuts"); err != nil {
		t.Fatal(err)
	}

	cp := p.Clone()
	cp.RemoveIngredient("flour")
	cp.RemoveTool("oven")
	cp.Unexclude("peanuts")

	if _, ok := p.Quantity("flour"); !ok {
		t.Error("clone mutation leaked into original ingredients")
	}
	if !p.OwnsTool("oven") {
		t.Error("clone mutation leaked into original tools")
	}
	if !p.Excluded("peanuts") {
		t.Error("clone mutation leaked into original exclusions")
	}
}

func TestRecipe_Clone(t *testing.T) {
	r := &Recipe{
		ID:          "r1",
		Name:        "Pancakes",
		Steps:       []string{"mix", "fry"},
		Ingredients: []RecipeIngredient{{Name: "flour", Quantity: 200, Unit: "g"}},
		Tools:       []string{"stove"},
		Hints: []SubstitutionHint{
			{For: "flour", Context: ContextIngredient, Alternatives: []string{"spelt flour"}},
		},
	}

	cp := r.Clone()
	cp.Ingredients[0].Name = "spelt flour"
	cp.Hints[0].Alternatives[0] = "rye flour"
	cp.Tools[0] = "hotplate"

	if r.Ingredients[0].Name != "flour" {
		t.Error("clone mutation leaked into original ingredients")
	}
	if r.Hints[0].Alternatives[0] != "spelt flour" {
		t.Error("clone mutation leaked into original hint alternatives")
	}
	if r.Tools[0] != "stove" {
		t.Error("clone mutation leaked into original tools")
	}
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{name: "unspecified", q: SomeAmount(), want: "some"},
		{name: "with unit", q: Quantity{Value: 1.5, Unit: "kg"}, want: "1.5 kg"},
		{name: "unitless", q: Quantity{Value: 3}, want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSubstitutionContext(t *testing.T) {
	tests := []struct {
		input  string
		want   SubstitutionContext
		wantOK bool
	}{
		{input: "ingredient", want: ContextIngredient, wantOK: true},
		{input: "Tool", want: ContextTool, wantOK: true},
		{input: "", want: ContextIngredient, wantOK: true},
		{input: "gadget", want: ContextIngredient, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSubstitutionContext(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSubstitutionContext(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
