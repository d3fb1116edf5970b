// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package match scores and ranks recipes against a user's inventory.
//
// Evaluate produces a ReadinessReport for one recipe: per-ingredient
// resolution (direct, via substitution, or unresolved), tool
// compatibility, a status classification, and a score. Rank evaluates a
// whole catalog snapshot and returns reports ordered best-first.
//
// Status and score rules:
//
//   - Ready: all tools owned directly and every required ingredient
//     resolved directly. Score 1.0.
//   - ReadyWithSubstitution: everything resolved, but at least one
//     ingredient or tool went through a substitution (or an optional
//     ingredient is unavailable). Score 0.5 + 0.5 x mean substitution
//     score, so always in (0.5, 1.0).
//   - Missing: anything required left unresolved. Score is the resolved
//     fraction of required ingredients x 0.4, always below 0.5, so
//     ranking never inverts category order.
//
// Ties rank by ascending recipe id, making Rank fully deterministic.
//
// Evaluation is a pure function over an inventory snapshot and the
// immutable catalog; Rank fans out across goroutines when configured
// with multiple workers, which is safe because nothing is shared
// mutably.
package match
