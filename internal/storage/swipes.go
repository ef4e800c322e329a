// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/tomtom215/lovesync/internal/models"
)

func swipeKey(userID, targetID string) []byte {
	return []byte(swipeKeyPrefix + userID + ":" + targetID)
}

// GetSwipe returns the recorded swipe for (userID, targetID).
func (s *Store) GetSwipe(ctx context.Context, userID, targetID string) (*models.SwipeEvent, error) {
	var ev models.SwipeEvent
	err := s.view(ctx, "get_swipe", func(txn *badger.Txn) error {
		return getJSON(txn, string(swipeKey(userID, targetID)), &ev, "swipe "+userID+"->"+targetID)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// PutSwipe records ev, replacing any earlier swipe on the same target.
func (s *Store) PutSwipe(ctx context.Context, ev *models.SwipeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal swipe: %w", err)
	}
	return s.update(ctx, "put_swipe", func(txn *badger.Txn) error {
		return txn.Set(swipeKey(ev.UserID, ev.TargetID), data)
	})
}

// DeleteSwipe removes the swipe for (userID, targetID). Missing records are ignored.
func (s *Store) DeleteSwipe(ctx context.Context, userID, targetID string) error {
	return s.update(ctx, "delete_swipe", func(txn *badger.Txn) error {
		return txn.Delete(swipeKey(userID, targetID))
	})
}

// ListSwipes returns a user's swipe log ordered by timestamp, oldest first.
func (s *Store) ListSwipes(ctx context.Context, userID string) ([]*models.SwipeEvent, error) {
	var events []*models.SwipeEvent
	err := s.view(ctx, "list_swipes", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(swipeKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var ev models.SwipeEvent
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ev)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			events = append(events, &ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

// SwipedTargets returns the set of target IDs the user has swiped on.
func (s *Store) SwipedTargets(ctx context.Context, userID string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	err := s.view(ctx, "swiped_targets", func(txn *badger.Txn) error {
		prefix := swipeKeyPrefix + userID + ":"
		keys, err := collectKeys(txn, prefix)
		if err != nil {
			return err
		}
		for _, k := range keys {
			out[string(k[len(prefix):])] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
