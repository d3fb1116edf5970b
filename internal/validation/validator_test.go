// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/larder/internal/models"
)

type sampleDoc struct {
	ID   string  `validate:"required"`
	Name string  `validate:"canonical"`
	Unit string  `validate:"unit"`
	Qty  float64 `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		doc       sampleDoc
		wantErr   bool
		wantField string
	}{
		{
			name: "valid document",
			doc:  sampleDoc{ID: "r1", Name: "Flour", Unit: "g", Qty: 1},
		},
		{
			name: "empty unit is valid",
			doc:  sampleDoc{ID: "r1", Name: "Flour", Unit: "", Qty: 1},
		},
		{
			name:      "missing id",
			doc:       sampleDoc{Name: "Flour", Unit: "g"},
			wantErr:   true,
			wantField: "ID",
		},
		{
			name:      "whitespace name fails canonical",
			doc:       sampleDoc{ID: "r1", Name: "   ", Unit: "g"},
			wantErr:   true,
			wantField: "Name",
		},
		{
			name:      "unknown unit",
			doc:       sampleDoc{ID: "r1", Name: "Flour", Unit: "smidgen"},
			wantErr:   true,
			wantField: "Unit",
		},
		{
			name:      "negative quantity",
			doc:       sampleDoc{ID: "r1", Name: "Flour", Unit: "g", Qty: -1},
			wantErr:   true,
			wantField: "Qty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			if len(err.Errors()) == 0 {
				t.Fatal("StructError.Errors() is empty")
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("first error field = %q, want %q", got, tt.wantField)
			}
			if err.Error() == "" {
				t.Error("StructError.Error() is empty")
			}
		})
	}
}

func TestValidateStruct_RecipeIngredient(t *testing.T) {
	tests := []struct {
		name      string
		ing       models.RecipeIngredient
		wantField string
	}{
		{
			name: "valid requirement line",
			ing:  models.RecipeIngredient{Name: "Flour", Quantity: 200, Unit: "g"},
		},
		{
			name: "quantity-less presence line",
			ing:  models.RecipeIngredient{Name: "Salt"},
		},
		{
			name:      "blank name",
			ing:       models.RecipeIngredient{Name: "   ", Quantity: 1, Unit: "g"},
			wantField: "Name",
		},
		{
			name:      "unknown unit",
			ing:       models.RecipeIngredient{Name: "Flour", Quantity: 1, Unit: "smidgen"},
			wantField: "Unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.ing)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("first error field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	doc := sampleDoc{Unit: "smidgen", Qty: -1}

	err := ValidateStruct(&doc)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 4 {
		t.Errorf("Errors() count = %d, want 4", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined Error() = %q, want multiple messages joined", err.Error())
	}
}
