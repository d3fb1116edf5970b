// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package substitution

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/models"
)

func testResolver(t *testing.T, table *RuleTable) *Resolver {
	t.Helper()
	return NewResolver(table, DefaultConfig(), zerolog.Nop())
}

func TestRuleTable_Add(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		alt     Alternative
		wantErr bool
	}{
		{name: "valid rule", target: "butter", alt: Alternative{Name: "margarine", Score: 0.8}},
		{name: "normalizes names", target: " Butter ", alt: Alternative{Name: "Ghee", Score: 0.9}},
		{name: "empty target", target: "", alt: Alternative{Name: "x", Score: 0.5}, wantErr: true},
		{name: "empty alternative", target: "butter", alt: Alternative{Name: " ", Score: 0.5}, wantErr: true},
		{name: "self substitution", target: "butter", alt: Alternative{Name: "BUTTER", Score: 0.5}, wantErr: true},
		{name: "score above one", target: "butter", alt: Alternative{Name: "oil", Score: 1.1}, wantErr: true},
		{name: "negative score", target: "butter", alt: Alternative{Name: "oil", Score: -0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewRuleTable()
			err := table.Add(models.ContextIngredient, tt.target, tt.alt)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRuleTable_AddDuplicate(t *testing.T) {
	table := NewRuleTable()
	if err := table.Add(models.ContextIngredient, "butter", Alternative{Name: "margarine", Score: 0.8}); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if err := table.Add(models.ContextIngredient, "butter", Alternative{Name: "Margarine", Score: 0.5}); err == nil {
		t.Error("duplicate Add() error = nil, want error")
	}
}

func TestResolver_NoRuleReturnsEmpty(t *testing.T) {
	r := testResolver(t, NewRuleTable())

	got := r.Resolve("saffron", models.ContextIngredient, nil, nil)
	if len(got) != 0 {
		t.Errorf("Resolve() = %v, want empty for unknown target", got)
	}
}

func TestResolver_GlobalRules(t *testing.T) {
	table := NewRuleTable()
	if err := table.Add(models.ContextTool, "stove", Alternative{Name: "oven", Score: 0.7}); err != nil {
		t.Fatal(err)
	}
	if err := table.Add(models.ContextTool, "stove", Alternative{Name: "hotplate", Score: 0.9}); err != nil {
		t.Fatal(err)
	}
	r := testResolver(t, table)

	got := r.Resolve("Stove", models.ContextTool, nil, nil)
	if len(got) != 2 {
		t.Fatalf("Resolve() returned %d alternatives, want 2", len(got))
	}
	// Table order is preserved (callers list best-first).
	if got[0].Name != "oven" || got[0].Score != 0.7 {
		t.Errorf("Resolve()[0] = %+v, want oven/0.7", got[0])
	}

	// Ingredient context must not see tool rules.
	if ing := r.Resolve("stove", models.ContextIngredient, nil, nil); len(ing) != 0 {
		t.Errorf("Resolve(ingredient context) = %v, want empty", ing)
	}
}

func TestResolver_HintPrecedenceAndScores(t *testing.T) {
	table := NewRuleTable()
	if err := table.Add(models.ContextIngredient, "milk", Alternative{Name: "soy milk", Score: 0.6}); err != nil {
		t.Fatal(err)
	}
	if err := table.Add(models.ContextIngredient, "milk", Alternative{Name: "oat milk", Score: 0.5}); err != nil {
		t.Fatal(err)
	}
	r := testResolver(t, table)

	recipe := &models.Recipe{
		ID: "r1",
		Hints: []models.SubstitutionHint{
			{
				For:     "milk",
				Context: models.ContextIngredient,
				// "oat milk" also exists globally; the hint entry wins.
				Alternatives: []string{"almond milk", "oat milk"},
			},
		},
	}

	got := r.Resolve("milk", models.ContextIngredient, recipe, nil)
	if len(got) != 3 {
		t.Fatalf("Resolve() returned %d alternatives, want 3: %v", len(got), got)
	}

	// Hints first, author order, descending scores from 0.9 by 0.05.
	if got[0].Name != "almond milk" || math.Abs(got[0].Score-0.9) > 1e-9 {
		t.Errorf("Resolve()[0] = %+v, want almond milk/0.9", got[0])
	}
	if got[1].Name != "oat milk" || math.Abs(got[1].Score-0.85) > 1e-9 {
		t.Errorf("Resolve()[1] = %+v, want oat milk/0.85 (hint score, not global)", got[1])
	}
	// Global alternative not covered by hints is appended with its own score.
	if got[2].Name != "soy milk" || got[2].Score != 0.6 {
		t.Errorf("Resolve()[2] = %+v, want soy milk/0.6", got[2])
	}
}

func TestResolver_FiltersExclusions(t *testing.T) {
	table := NewRuleTable()
	if err := table.Add(models.ContextIngredient, "milk", Alternative{Name: "soy milk", Score: 0.6}); err != nil {
		t.Fatal(err)
	}
	if err := table.Add(models.ContextIngredient, "milk", Alternative{Name: "oat milk", Score: 0.5}); err != nil {
		t.Fatal(err)
	}
	r := testResolver(t, table)

	exclusions := map[string]struct{}{"soy milk": {}}
	got := r.Resolve("milk", models.ContextIngredient, nil, exclusions)
	if len(got) != 1 || got[0].Name != "oat milk" {
		t.Errorf("Resolve() = %v, want only oat milk", got)
	}
}

func TestResolver_NeverReturnsTarget(t *testing.T) {
	r := testResolver(t, NewRuleTable())

	recipe := &models.Recipe{
		ID: "r1",
		Hints: []models.SubstitutionHint{
			// A malformed hint listing the target itself must not echo it.
			{For: "milk", Context: models.ContextIngredient, Alternatives: []string{"milk", "soy milk"}},
		},
	}

	got := r.Resolve("milk", models.ContextIngredient, recipe, nil)
	for _, alt := range got {
		if alt.Name == "milk" {
			t.Fatalf("Resolve() returned the target itself: %v", got)
		}
	}
	if len(got) != 1 || got[0].Name != "soy milk" {
		t.Errorf("Resolve() = %v, want only soy milk", got)
	}
}

func TestResolver_HintScoreFloor(t *testing.T) {
	r := NewResolver(NewRuleTable(), Config{HintScoreStart: 0.1, HintScoreStep: 0.08}, zerolog.Nop())

	recipe := &models.Recipe{
		ID: "r1",
		Hints: []models.SubstitutionHint{
			{For: "x", Context: models.ContextIngredient, Alternatives: []string{"a", "b", "c"}},
		},
	}

	got := r.Resolve("x", models.ContextIngredient, recipe, nil)
	if len(got) != 3 {
		t.Fatalf("Resolve() returned %d alternatives, want 3", len(got))
	}
	for _, alt := range got {
		if alt.Score < 0 {
			t.Errorf("alternative %q has negative score %v", alt.Name, alt.Score)
		}
	}
}

func TestParseRuleTable(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantLen int
		wantErr bool
	}{
		{
			name: "valid file",
			yaml: `rules:
  - context: tool
    target: stove
    alternatives:
      - name: oven
        score: 0.7
  - context: ingredient
    target: butter
    alternatives:
      - name: margarine
        score: 0.8
      - name: coconut oil
        score: 0.6
`,
			wantLen: 2,
		},
		{
			name:    "bad context",
			yaml:    "rules:\n  - context: gadget\n    target: x\n    alternatives:\n      - name: y\n        score: 0.5\n",
			wantErr: true,
		},
		{
			name:    "no alternatives",
			yaml:    "rules:\n  - context: ingredient\n    target: x\n    alternatives: []\n",
			wantErr: true,
		},
		{
			name:    "score out of range",
			yaml:    "rules:\n  - context: ingredient\n    target: x\n    alternatives:\n      - name: y\n        score: 1.5\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseRuleTable([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRuleTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && table.Len() != tt.wantLen {
				t.Errorf("table.Len() = %d, want %d", table.Len(), tt.wantLen)
			}
		})
	}
}
