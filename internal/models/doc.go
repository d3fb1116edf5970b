// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package models defines the core domain types shared across Larder:
// canonical ingredient and tool names, units of measure and their
// families, quantities, recipes, and user inventory profiles.
//
// Identity rules:
//   - Two ingredient references are equal iff their canonical names match.
//     Canonical names are produced by Canonical (Unicode NFKC
//     normalization, case folding, whitespace collapse).
//   - Tools are identified by canonical name alone and are binary
//     owned/not-owned; they carry no quantity.
//
// Unit handling:
//   - Units belong to a family (mass, volume, count). Quantities convert
//     freely within a family and never across families; a cross-family
//     comparison is surfaced as unit-incompatible by the match engine,
//     not silently coerced.
//
// The types here carry no behavior beyond normalization, conversion, and
// inventory mutation. Matching, substitution, and shopping-list logic
// live in their own packages.
package models
