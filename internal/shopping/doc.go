// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package shopping aggregates missing ingredients from selected recipes
// into a persistent, provenance-tracked shopping list.
//
// Each entry remembers how much every contributing recipe added
// (provenance), plus a manual portion the user added directly. An
// entry's needed quantity is always the sum of its outstanding recipe
// contributions and its manual portion:
//
//	needed = sum(per-recipe contributions) + manual
//
// Deselecting a recipe subtracts exactly what it contributed; an entry
// with no remaining contributions and no manual portion disappears,
// except completed entries, which stay until explicitly cleared so that
// completion can be undone.
//
// Entries are keyed by ingredient plus unit family: contributions
// convert into an entry's unit when the families match, and land in a
// separate entry when they do not, because summing grams into
// milliliters would require a guessed conversion.
//
// Mutations apply atomically per entry; entries are independent, so
// concurrent same-user edits resolve last-write-wins per entry with no
// cross-entry transaction.
package shopping
