// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// caseFolder performs locale-independent case folding.
// cases.Fold is stateless and safe for concurrent use.
var caseFolder = cases.Fold()

// Canonical returns the canonical form of an ingredient or tool name.
//
// Canonicalization applies, in order:
//  1. Unicode NFKC normalization (compatibility forms collapse)
//  2. Case folding (locale-independent lowering, handles ß, İ, etc.)
//  3. Whitespace trimming and internal whitespace collapse to single spaces
//
// Two references denote the same ingredient iff their canonical forms are
// byte-equal. Callers normalize at the boundary; internal code assumes
// names are already canonical.
func Canonical(name string) string {
	folded := caseFolder.String(norm.NFKC.String(name))
	return strings.Join(strings.Fields(folded), " ")
}

// ParseList splits comma-separated free-text input into canonical names.
// Empty items are dropped. Duplicates are preserved in input order; callers
// that need set semantics deduplicate themselves.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		c := Canonical(p)
		if c != "" {
			names = append(names, c)
		}
	}

	if len(names) == 0 {
		return nil
	}
	return names
}
