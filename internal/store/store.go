// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/models"
	"github.com/tomtom215/larder/internal/shopping"
)

// Key prefixes for BadgerDB storage.
const (
	profileKeyPrefix = "profile:"
	listKeyPrefix    = "list:"
)

// Sentinel errors for missing records.
var (
	ErrProfileNotFound = errors.New("inventory profile not found")
	ErrListNotFound    = errors.New("shopping list not found")
)

// Store persists inventory profiles and shopping lists in BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Suppress BadgerDB internal logs
	// Profiles and lists are small records; the default 1GB value log is
	// far more than this workload needs.
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a non-durable store, used in tests and for
// ephemeral runs.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProfile writes a user's inventory profile.
func (s *Store) SaveProfile(ctx context.Context, profile *models.InventoryProfile) error {
	if profile == nil || profile.UserID == "" {
		return errors.New("profile must have a user id")
	}
	err := s.put(profileKeyPrefix+profile.UserID, profile)
	metrics.RecordStoreOperation("save_profile", err)
	return err
}

// LoadProfile reads a user's inventory profile.
// Returns ErrProfileNotFound when the user has none.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*models.InventoryProfile, error) {
	var profile models.InventoryProfile
	err := s.get(profileKeyPrefix+userID, &profile, ErrProfileNotFound)
	metrics.RecordStoreOperation("load_profile", ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	if profile.Ingredients == nil {
		profile.Ingredients = make(map[string]models.Quantity)
	}
	if profile.Tools == nil {
		profile.Tools = make(map[string]struct{})
	}
	if profile.Exclusions == nil {
		profile.Exclusions = make(map[string]struct{})
	}
	return &profile, nil
}

// DeleteProfile removes a user's inventory profile. Deleting a missing
// profile is not an error.
func (s *Store) DeleteProfile(ctx context.Context, userID string) error {
	err := s.delete(profileKeyPrefix + userID)
	metrics.RecordStoreOperation("delete_profile", err)
	return err
}

// ProfileUserIDs lists the user ids that have a stored profile, sorted.
func (s *Store) ProfileUserIDs(ctx context.Context) ([]string, error) {
	ids, err := s.keysWithPrefix(profileKeyPrefix)
	metrics.RecordStoreOperation("list_profiles", err)
	return ids, err
}

// SaveList writes a user's shopping list.
func (s *Store) SaveList(ctx context.Context, list *shopping.List) error {
	if list == nil || list.UserID == "" {
		return errors.New("list must have a user id")
	}
	err := s.put(listKeyPrefix+list.UserID, list)
	metrics.RecordStoreOperation("save_list", err)
	return err
}

// LoadList reads a user's shopping list.
// Returns ErrListNotFound when the user has none.
func (s *Store) LoadList(ctx context.Context, userID string) (*shopping.List, error) {
	var list shopping.List
	err := s.get(listKeyPrefix+userID, &list, ErrListNotFound)
	metrics.RecordStoreOperation("load_list", ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	if list.Entries == nil {
		list.Entries = make(map[string]*shopping.Entry)
	}
	return &list, nil
}

// DeleteList removes a user's shopping list. Deleting a missing list is
// not an error.
func (s *Store) DeleteList(ctx context.Context, userID string) error {
	err := s.delete(listKeyPrefix + userID)
	metrics.RecordStoreOperation("delete_list", err)
	return err
}

// put JSON-encodes a record and writes it in one transaction.
func (s *Store) put(key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get reads and decodes a record, mapping badger's not-found onto the
// caller's sentinel.
func (s *Store) get(key string, record any, notFound error) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return notFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, record)
		})
	})
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// keysWithPrefix returns the key suffixes under a prefix, sorted.
func (s *Store) keysWithPrefix(prefix string) ([]string, error) {
	var out []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			out = append(out, string(it.Item().Key()[len(p):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	sort.Strings(out)
	return out, nil
}

// ignoreNotFound keeps missing-record reads out of the error metric;
// a cold lookup is a normal outcome, not a store failure.
func ignoreNotFound(err error) error {
	if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrListNotFound) {
		return nil
	}
	return err
}
