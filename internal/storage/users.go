// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/tomtom215/lovesync/internal/models"
)

// CreateUser stores a new profile together with its initial preference
// vector. Returns models.ErrConflict if the ID is taken.
func (s *Store) CreateUser(ctx context.Context, user *models.User, pref *models.PreferenceVector) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	prefData, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("marshal preference: %w", err)
	}

	return s.update(ctx, "create_user", func(txn *badger.Txn) error {
		key := []byte(userKeyPrefix + user.ID)
		_, err := txn.Get(key)
		if err == nil {
			return fmt.Errorf("%w: user %s already exists", models.ErrConflict, user.ID)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get user: %w", err)
		}

		if err := txn.Set(key, userData); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		if err := txn.Set([]byte(preferenceKeyPrefix+user.ID), prefData); err != nil {
			return fmt.Errorf("set preference: %w", err)
		}
		return nil
	})
}

// GetUser retrieves a profile by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.view(ctx, "get_user", func(txn *badger.Txn) error {
		return getJSON(txn, userKeyPrefix+id, &user, "user "+id)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies fn to the stored profile inside one transaction and
// returns the result. The ID cannot be changed.
func (s *Store) UpdateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	var user models.User
	err := s.update(ctx, "update_user", func(txn *badger.Txn) error {
		if err := getJSON(txn, userKeyPrefix+id, &user, "user "+id); err != nil {
			return err
		}
		if err := fn(&user); err != nil {
			return err
		}
		user.ID = id
		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		return txn.Set([]byte(userKeyPrefix+id), data)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchUser advances lastActiveAt to at if it is later than the stored value.
// Returns the stored profile after the update.
func (s *Store) TouchUser(ctx context.Context, id string, at time.Time) (*models.User, error) {
	var user models.User
	err := s.update(ctx, "touch_user", func(txn *badger.Txn) error {
		if err := getJSON(txn, userKeyPrefix+id, &user, "user "+id); err != nil {
			return err
		}
		if !at.After(user.LastActiveAt) {
			return nil
		}
		user.LastActiveAt = at
		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		return txn.Set([]byte(userKeyPrefix+id), data)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every stored profile.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.view(ctx, "list_users", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var u models.User
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &u)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			users = append(users, &u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the profile, the preference vector and the user's own
// swipe log in one transaction.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.update(ctx, "delete_user", func(txn *badger.Txn) error {
		userKey := []byte(userKeyPrefix + id)
		if _, err := txn.Get(userKey); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: user %s", models.ErrNotFound, id)
			}
			return err
		}

		swipeKeys, err := collectKeys(txn, swipeKeyPrefix+id+":")
		if err != nil {
			return err
		}
		for _, k := range swipeKeys {
			if err := txn.Delete(k); err != nil {
				return fmt.Errorf("delete swipe: %w", err)
			}
		}
		if err := txn.Delete([]byte(preferenceKeyPrefix + id)); err != nil {
			return fmt.Errorf("delete preference: %w", err)
		}
		if err := txn.Delete(userKey); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

// getJSON decodes key into v, mapping a missing key to models.ErrNotFound.
func getJSON(txn *badger.Txn, key string, v any, what string) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", models.ErrNotFound, what)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", what, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func collectKeys(txn *badger.Txn, prefix string) ([][]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys, nil
}
