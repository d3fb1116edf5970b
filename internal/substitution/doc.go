// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package substitution resolves replacement candidates for missing
// ingredients and unavailable tools.
//
// Two rule sources feed the resolver:
//
//   - Recipe-scoped hints: author-declared SubstitutionHint entries on a
//     recipe. Author order is preserved and mapped to descending scores
//     starting at a configurable base (default 0.9) with a fixed step
//     per rank.
//   - Global rules: a catalog-wide RuleTable of ranked alternatives with
//     explicit compatibility scores in [0, 1].
//
// Recipe-scoped hints take precedence; global alternatives are appended
// afterwards, deduplicated by alternative identity. The target is never
// returned as its own alternative, and alternatives on the inventory's
// exclusion list are filtered before returning.
//
// Absence of a rule is not an error: Resolve returns an empty slice,
// meaning "no known swap".
package substitution
