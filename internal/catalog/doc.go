// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package catalog builds and serves the immutable recipe catalog.
//
// A catalog is constructed once per process (or per reload) through
// Build, which normalizes every name and unit token and enforces the
// ingestion rules:
//
//   - recipe ids are unique and non-empty
//   - ingredient quantities are positive whenever a unit is specified
//   - unit tokens are recognized
//   - substitution hints reference ingredients or tools actually present
//     in the recipe
//
// A recipe failing any rule rejects the whole build with a descriptive
// error; nothing is silently dropped. Validation happens here at build
// time, never per match request.
//
// The result is a versioned Snapshot: read-only lookup by id, full
// enumeration in deterministic (ascending id) order, and derived-recipe
// construction via ApplySubstitution. Snapshots are never mutated, so
// concurrent evaluations share them without locking.
//
// Loaders accept two on-disk shapes: the structured YAML catalog
// (primary) and a legacy CSV export with free-text ingredient lists.
package catalog
