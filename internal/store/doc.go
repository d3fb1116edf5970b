// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package store persists inventory profiles and shopping lists in
// BadgerDB. Records are JSON-encoded under typed key prefixes so one
// database serves both record kinds; iteration by prefix lists a kind
// without touching the other.
//
// The store is the durability line of the system: catalog snapshots and
// readiness reports are derived data and are never written here.
package store
