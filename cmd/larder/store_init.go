// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/models"
	"github.com/tomtom215/larder/internal/shopping"
	"github.com/tomtom215/larder/internal/store"
)

// openStore opens the configured persistence backend.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Store.InMemory {
		return store.OpenInMemory()
	}
	s, err := store.Open(cfg.Store.Dir)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.Store.Dir, err)
	}
	return s, nil
}

// loadOrCreateProfile returns the user's stored profile, or a fresh
// empty one on first use.
func loadOrCreateProfile(ctx context.Context, s *store.Store, userID string) (*models.InventoryProfile, error) {
	profile, err := s.LoadProfile(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.NewInventoryProfile(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// loadOrCreateList returns the user's stored shopping list, or a fresh
// empty one on first use.
func loadOrCreateList(ctx context.Context, s *store.Store, userID string) (*shopping.List, error) {
	list, err := s.LoadList(ctx, userID)
	if errors.Is(err, store.ErrListNotFound) {
		return shopping.NewList(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}
