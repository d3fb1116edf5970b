// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package models

import (
	"fmt"
	"strings"
)

// UnitFamily classifies units of measure. Quantities convert within a
// family and never across families.
type UnitFamily int

const (
	// FamilyNone indicates no unit ("some amount" entries).
	FamilyNone UnitFamily = iota
	// FamilyMass covers weight units (base: gram).
	FamilyMass
	// FamilyVolume covers liquid/dry volume units (base: milliliter).
	FamilyVolume
	// FamilyCount covers discrete units (base: piece).
	FamilyCount
)

// String returns a human-readable family name.
func (f UnitFamily) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyMass:
		return "mass"
	case FamilyVolume:
		return "volume"
	case FamilyCount:
		return "count"
	default:
		return "unknown"
	}
}

// unitDef describes a recognized unit token.
type unitDef struct {
	family UnitFamily
	// factor converts a value in this unit to the family base unit
	// (gram, milliliter, or piece).
	factor float64
}

// unitTable maps canonical unit tokens to their definitions.
// Aliases map onto the same definition.
var unitTable = map[string]unitDef{
	// Mass (base: gram)
	"mg": {FamilyMass, 0.001},
	"g":  {FamilyMass, 1},
	"kg": {FamilyMass, 1000},
	"oz": {FamilyMass, 28.3495},
	"lb": {FamilyMass, 453.592},

	// Volume (base: milliliter)
	"ml":   {FamilyVolume, 1},
	"l":    {FamilyVolume, 1000},
	"tsp":  {FamilyVolume, 4.92892},
	"tbsp": {FamilyVolume, 14.7868},
	"cup":  {FamilyVolume, 236.588},
	"floz": {FamilyVolume, 29.5735},

	// Count (base: piece)
	"count": {FamilyCount, 1},
	"piece": {FamilyCount, 1},
	"pc":    {FamilyCount, 1},
	"dozen": {FamilyCount, 12},
}

// unitAliases maps alternate spellings to canonical unit tokens.
var unitAliases = map[string]string{
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"milligram":   "mg",
	"milligrams":  "mg",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"cups":        "cup",
	"fl oz":       "floz",
	"pieces":      "piece",
	"pcs":         "pc",
}

// UnitFamilyOf returns the family of a unit token, or FamilyNone with
// ok=false when the token is not recognized. The empty token is valid and
// maps to FamilyNone with ok=true.
func UnitFamilyOf(unit string) (UnitFamily, bool) {
	if unit == "" {
		return FamilyNone, true
	}

	token := Canonical(unit)
	if alias, found := unitAliases[token]; found {
		token = alias
	}

	def, found := unitTable[token]
	if !found {
		return FamilyNone, false
	}
	return def.family, true
}

// NormalizeUnit returns the canonical token for a unit spelling, or an
// error for unrecognized tokens. The empty string normalizes to itself.
func NormalizeUnit(unit string) (string, error) {
	if unit == "" {
		return "", nil
	}

	token := Canonical(unit)
	if alias, found := unitAliases[token]; found {
		token = alias
	}

	if _, found := unitTable[token]; !found {
		return "", fmt.Errorf("unrecognized unit %q", unit)
	}
	return token, nil
}

// ConvertUnit converts a value between two unit tokens.
// Returns ok=false when either token is unrecognized or the families
// differ; the caller decides how to surface the incompatibility.
func ConvertUnit(value float64, from, to string) (float64, bool) {
	fromTok, err := NormalizeUnit(from)
	if err != nil {
		return 0, false
	}
	toTok, err := NormalizeUnit(to)
	if err != nil {
		return 0, false
	}

	// Unitless to unitless is the identity.
	if fromTok == "" && toTok == "" {
		return value, true
	}
	if fromTok == "" || toTok == "" {
		return 0, false
	}

	fromDef := unitTable[fromTok]
	toDef := unitTable[toTok]
	if fromDef.family != toDef.family {
		return 0, false
	}

	return value * fromDef.factor / toDef.factor, true
}

// Quantity is an amount of an ingredient. Unspecified quantities mean
// "some amount available" and compare as sufficient unless a recipe marks
// the requirement strict.
type Quantity struct {
	// Value is the numeric amount. Ignored when Unspecified is true.
	Value float64 `json:"value"`

	// Unit is the canonical unit token ("" for unitless counts-of-nothing).
	Unit string `json:"unit,omitempty"`

	// Unspecified marks a "some amount available" entry.
	Unspecified bool `json:"unspecified,omitempty"`
}

// SomeAmount returns an unspecified quantity.
func SomeAmount() Quantity {
	return Quantity{Unspecified: true}
}

// NewQuantity builds a quantity with a normalized unit token.
func NewQuantity(value float64, unit string) (Quantity, error) {
	tok, err := NormalizeUnit(unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: tok}, nil
}

// String formats the quantity for logs and CLI output.
func (q Quantity) String() string {
	if q.Unspecified {
		return "some"
	}
	if q.Unit == "" {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", q.Value), "0"), ".")
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", q.Value), "0"), ".") + " " + q.Unit
}
