// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package storage

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/tomtom215/lovesync/internal/models"
)

// GetPreference retrieves a user's preference vector.
func (s *Store) GetPreference(ctx context.Context, userID string) (*models.PreferenceVector, error) {
	var vec models.PreferenceVector
	err := s.view(ctx, "get_preference", func(txn *badger.Txn) error {
		return getJSON(txn, preferenceKeyPrefix+userID, &vec, "preference "+userID)
	})
	if err != nil {
		return nil, err
	}
	if vec.Weights == nil {
		vec.Weights = map[string]float64{}
	}
	return &vec, nil
}

// UpdatePreference reads the vector, applies fn and writes the result in one
// transaction. The vector must exist.
func (s *Store) UpdatePreference(ctx context.Context, userID string, fn func(*models.PreferenceVector) error) (*models.PreferenceVector, error) {
	var vec models.PreferenceVector
	err := s.update(ctx, "update_preference", func(txn *badger.Txn) error {
		key := preferenceKeyPrefix + userID
		if err := getJSON(txn, key, &vec, "preference "+userID); err != nil {
			return err
		}
		if vec.Weights == nil {
			vec.Weights = map[string]float64{}
		}
		if err := fn(&vec); err != nil {
			return err
		}
		data, err := json.Marshal(&vec)
		if err != nil {
			return fmt.Errorf("marshal preference: %w", err)
		}
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return nil, err
	}
	return &vec, nil
}

// ListPreferences returns all vectors keyed by user ID.
func (s *Store) ListPreferences(ctx context.Context) (map[string]*models.PreferenceVector, error) {
	out := make(map[string]*models.PreferenceVector)
	err := s.view(ctx, "list_preferences", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(preferenceKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var vec models.PreferenceVector
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &vec)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out[vec.UserID] = &vec
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
