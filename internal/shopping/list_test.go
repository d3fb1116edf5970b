// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package shopping

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/larder/internal/match"
	"github.com/tomtom215/larder/internal/models"
)

func qty(value float64, unit string) models.Quantity {
	return models.Quantity{Value: value, Unit: unit}
}

func report(recipeID string, checks ...match.IngredientCheck) *match.ReadinessReport {
	return &match.ReadinessReport{
		RecipeID:    recipeID,
		Status:      match.StatusMissing,
		Ingredients: checks,
	}
}

func unresolved(name string, required models.Quantity) match.IngredientCheck {
	return match.IngredientCheck{
		Name:       name,
		Required:   required,
		Resolution: match.Unresolved,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddFromRecipe(t *testing.T) {
	recipe := &models.Recipe{ID: "r1", Name: "Pancakes"}

	t.Run("adds unresolved non-optional lines only", func(t *testing.T) {
		list := NewList("u1")
		rep := report("r1",
			unresolved("milk", qty(250, "ml")),
			match.IngredientCheck{
				Name:       "flour",
				Required:   qty(200, "g"),
				Resolution: match.ResolvedDirect,
			},
			match.IngredientCheck{
				Name:              "butter",
				Required:          qty(30, "g"),
				Resolution:        match.ResolvedSubstitution,
				Substitute:        "margarine",
				SubstitutionScore: 0.8,
			},
			match.IngredientCheck{
				Name:       "vanilla",
				Required:   qty(5, "ml"),
				Optional:   true,
				Resolution: match.SkippedOptional,
			},
		)

		touched, err := list.AddFromRecipe(rep, recipe)
		if err != nil {
			t.Fatalf("AddFromRecipe: %v", err)
		}
		if touched != 1 {
			t.Fatalf("touched = %d, want 1", touched)
		}

		entry, ok := list.Entries[EntryKey("milk", "ml")]
		if !ok {
			t.Fatal("milk entry missing")
		}
		if !approx(entry.Quantity, 250) {
			t.Errorf("quantity = %v, want 250", entry.Quantity)
		}
		if !approx(entry.Sources["r1"], 250) {
			t.Errorf("source contribution = %v, want 250", entry.Sources["r1"])
		}
	})

	t.Run("contribution is the shortfall against on-hand amount", func(t *testing.T) {
		list := NewList("u1")
		available := qty(100, "ml")
		rep := report("r1", match.IngredientCheck{
			Name:       "milk",
			Required:   qty(250, "ml"),
			Available:  &available,
			Resolution: match.Unresolved,
		})

		if _, err := list.AddFromRecipe(rep, recipe); err != nil {
			t.Fatalf("AddFromRecipe: %v", err)
		}

		entry := list.Entries[EntryKey("milk", "ml")]
		if !approx(entry.Quantity, 150) {
			t.Errorf("quantity = %v, want shortfall 150", entry.Quantity)
		}
	})

	t.Run("incomparable on-hand amount contributes full requirement", func(t *testing.T) {
		list := NewList("u1")
		available := qty(100, "g")
		rep := report("r1", match.IngredientCheck{
			Name:             "milk",
			Required:         qty(250, "ml"),
			Available:        &available,
			Resolution:       match.Unresolved,
			UnitIncompatible: true,
		})

		if _, err := list.AddFromRecipe(rep, recipe); err != nil {
			t.Fatalf("AddFromRecipe: %v", err)
		}
		if got := list.Entries[EntryKey("milk", "ml")].Quantity; !approx(got, 250) {
			t.Errorf("quantity = %v, want 250", got)
		}
	})

	t.Run("same-family contributions convert into the entry unit", func(t *testing.T) {
		list := NewList("u1")
		first := report("r1", unresolved("flour", qty(200, "g")))
		second := report("r2", unresolved("flour", qty(1, "kg")))

		if _, err := list.AddFromRecipe(first, recipe); err != nil {
			t.Fatalf("first add: %v", err)
		}
		if _, err := list.AddFromRecipe(second, &models.Recipe{ID: "r2"}); err != nil {
			t.Fatalf("second add: %v", err)
		}

		if len(list.Entries) != 1 {
			t.Fatalf("entries = %d, want 1 merged entry", len(list.Entries))
		}
		entry := list.Entries[EntryKey("flour", "g")]
		if !approx(entry.Quantity, 1200) {
			t.Errorf("quantity = %v, want 1200 g", entry.Quantity)
		}
		if !approx(entry.Sources["r2"], 1000) {
			t.Errorf("r2 contribution = %v, want 1000 g", entry.Sources["r2"])
		}
	})

	t.Run("cross-family requirements land in separate entries", func(t *testing.T) {
		list := NewList("u1")
		rep := report("r1",
			unresolved("honey", qty(50, "g")),
		)
		rep2 := report("r2",
			unresolved("honey", qty(30, "ml")),
		)

		if _, err := list.AddFromRecipe(rep, recipe); err != nil {
			t.Fatalf("first add: %v", err)
		}
		if _, err := list.AddFromRecipe(rep2, &models.Recipe{ID: "r2"}); err != nil {
			t.Fatalf("second add: %v", err)
		}

		if len(list.Entries) != 2 {
			t.Fatalf("entries = %d, want 2 (one per family)", len(list.Entries))
		}
	})

	t.Run("re-adding the same recipe replaces its contribution", func(t *testing.T) {
		list := NewList("u1")
		rep := report("r1", unresolved("milk", qty(250, "ml")))

		for i := 0; i < 3; i++ {
			if _, err := list.AddFromRecipe(rep, recipe); err != nil {
				t.Fatalf("add %d: %v", i, err)
			}
		}

		if got := list.Entries[EntryKey("milk", "ml")].Quantity; !approx(got, 250) {
			t.Errorf("quantity after re-adds = %v, want 250", got)
		}
	})

	t.Run("quantity-less requirement yields a some-amount entry", func(t *testing.T) {
		list := NewList("u1")
		rep := report("r1", unresolved("salt", models.SomeAmount()))

		if _, err := list.AddFromRecipe(rep, recipe); err != nil {
			t.Fatalf("AddFromRecipe: %v", err)
		}

		entry := list.Entries[EntryKey("salt", "")]
		if entry == nil {
			t.Fatal("salt entry missing")
		}
		if needed := entry.Needed(); !needed.Unspecified {
			t.Errorf("Needed() = %v, want some amount", needed)
		}
	})

	t.Run("rejects mismatched report and recipe", func(t *testing.T) {
		list := NewList("u1")
		rep := report("r1", unresolved("milk", qty(250, "ml")))

		if _, err := list.AddFromRecipe(rep, &models.Recipe{ID: "other"}); err == nil {
			t.Fatal("expected error for mismatched recipe id")
		}
	})
}

func TestRemoveRecipeContributionRoundTrip(t *testing.T) {
	list := NewList("u1")
	if err := list.AddManual("flour", qty(500, "g")); err != nil {
		t.Fatalf("AddManual: %v", err)
	}

	rep := report("r1",
		unresolved("flour", qty(200, "g")),
		unresolved("milk", qty(250, "ml")),
	)
	if _, err := list.AddFromRecipe(rep, &models.Recipe{ID: "r1"}); err != nil {
		t.Fatalf("AddFromRecipe: %v", err)
	}

	if got := list.Entries[EntryKey("flour", "g")].Quantity; !approx(got, 700) {
		t.Fatalf("flour quantity = %v, want 700", got)
	}

	removed := list.RemoveRecipeContribution("r1")
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	// Milk existed only through r1 and disappears.
	if _, ok := list.Entries[EntryKey("milk", "ml")]; ok {
		t.Error("milk entry should be gone after deselection")
	}

	// Flour keeps its manual portion exactly.
	flour, ok := list.Entries[EntryKey("flour", "g")]
	if !ok {
		t.Fatal("flour entry should survive via its manual portion")
	}
	if !approx(flour.Quantity, 500) {
		t.Errorf("flour quantity = %v, want manual 500", flour.Quantity)
	}
	if len(flour.Sources) != 0 {
		t.Errorf("flour sources = %v, want empty", flour.Sources)
	}
}

func TestRemoveRecipeContributionKeepsCompleted(t *testing.T) {
	list := NewList("u1")
	rep := report("r1", unresolved("milk", qty(250, "ml")))
	if _, err := list.AddFromRecipe(rep, &models.Recipe{ID: "r1"}); err != nil {
		t.Fatalf("AddFromRecipe: %v", err)
	}

	key := EntryKey("milk", "ml")
	if err := list.ToggleCompleted(key); err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}

	list.RemoveRecipeContribution("r1")
	if _, ok := list.Entries[key]; !ok {
		t.Fatal("completed entry must survive deselection")
	}

	if removed := list.ClearCompleted(); removed != 1 {
		t.Errorf("ClearCompleted = %d, want 1", removed)
	}
	if len(list.Entries) != 0 {
		t.Errorf("entries after clear = %d, want 0", len(list.Entries))
	}
}

func TestToggleCompleted(t *testing.T) {
	list := NewList("u1")
	if err := list.AddManual("eggs", qty(6, "piece")); err != nil {
		t.Fatalf("AddManual: %v", err)
	}

	key := EntryKey("eggs", "piece")
	if err := list.ToggleCompleted(key); err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}
	if !list.Entries[key].Completed {
		t.Error("entry should be completed")
	}

	if err := list.ToggleCompleted(key); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if list.Entries[key].Completed {
		t.Error("entry should be uncompleted again")
	}

	if err := list.ToggleCompleted("no|such"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestAddManual(t *testing.T) {
	t.Run("accumulates with unit conversion", func(t *testing.T) {
		list := NewList("u1")
		if err := list.AddManual("Flour", qty(500, "g")); err != nil {
			t.Fatalf("first add: %v", err)
		}
		if err := list.AddManual("flour", qty(1, "kg")); err != nil {
			t.Fatalf("second add: %v", err)
		}

		entry := list.Entries[EntryKey("flour", "g")]
		if entry == nil {
			t.Fatal("flour entry missing")
		}
		if !approx(entry.Quantity, 1500) {
			t.Errorf("quantity = %v, want 1500 g", entry.Quantity)
		}
	})

	t.Run("normalizes unit aliases", func(t *testing.T) {
		list := NewList("u1")
		if err := list.AddManual("milk", qty(2, "liters")); err != nil {
			t.Fatalf("AddManual: %v", err)
		}
		entry := list.Entries[EntryKey("milk", "l")]
		if entry == nil {
			t.Fatal("milk entry missing")
		}
		if entry.Unit != "l" {
			t.Errorf("unit = %q, want %q", entry.Unit, "l")
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		list := NewList("u1")
		if err := list.AddManual("   ", qty(1, "g")); err == nil {
			t.Error("expected error for empty name")
		}
		if err := list.AddManual("flour", qty(1, "bushel")); err == nil {
			t.Error("expected error for unrecognized unit")
		}
		if err := list.AddManual("flour", qty(-1, "g")); err == nil {
			t.Error("expected error for negative quantity")
		}
	})
}

func TestRemoveManual(t *testing.T) {
	list := NewList("u1")
	if err := list.AddManual("flour", qty(500, "g")); err != nil {
		t.Fatalf("AddManual: %v", err)
	}
	rep := report("r1", unresolved("flour", qty(200, "g")))
	if _, err := list.AddFromRecipe(rep, &models.Recipe{ID: "r1"}); err != nil {
		t.Fatalf("AddFromRecipe: %v", err)
	}

	touched := list.RemoveManual("Flour")
	if touched != 1 {
		t.Errorf("touched = %d, want 1", touched)
	}

	// Recipe contribution keeps the entry alive, manual portion is gone.
	entry, ok := list.Entries[EntryKey("flour", "g")]
	if !ok {
		t.Fatal("entry with recipe sources must survive RemoveManual")
	}
	if !approx(entry.Quantity, 200) {
		t.Errorf("quantity = %v, want 200", entry.Quantity)
	}

	list.RemoveRecipeContribution("r1")
	if len(list.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(list.Entries))
	}
}

func TestSortedAndClone(t *testing.T) {
	list := NewList("u1")
	if err := list.AddManual("zucchini", qty(2, "piece")); err != nil {
		t.Fatalf("AddManual: %v", err)
	}
	if err := list.AddManual("apple", qty(3, "piece")); err != nil {
		t.Fatalf("AddManual: %v", err)
	}

	sorted := list.Sorted()
	if len(sorted) != 2 || sorted[0].Ingredient != "apple" || sorted[1].Ingredient != "zucchini" {
		t.Errorf("Sorted order wrong: %v", sorted)
	}

	cp := list.Clone()
	cp.Entries[EntryKey("apple", "piece")].Manual = 99
	delete(cp.Entries, EntryKey("zucchini", "piece"))

	if got := list.Entries[EntryKey("apple", "piece")].Manual; !approx(got, 3) {
		t.Errorf("clone mutation leaked into original: manual = %v", got)
	}
	if len(list.Entries) != 2 {
		t.Errorf("original entries = %d, want 2", len(list.Entries))
	}
}
