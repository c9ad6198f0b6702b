// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/models"
)

// interactionKeyPrefix namespaces interaction records in Badger.
const interactionKeyPrefix = "interaction:"

// maxTxnRetries bounds the retry loop for conflicting transactions.
// Badger's SSI aborts one of two transactions touching the same key;
// retrying re-reads the current count, so increments are never lost.
const maxTxnRetries = 10

// Interactions is the Badger-backed interaction store.
//
// Keys have the form "interaction:<userID>:<movieID>:<type>" with the
// movie ID zero-padded so prefix iteration over a user yields a
// deterministic order. The user ID segment is query-escaped so a ":"
// inside an ID cannot make one user's prefix match another's keys.
type Interactions struct {
	db *badger.DB
}

// NewInteractions opens the interaction store. With cfg.InMemory set,
// Badger keeps everything in memory; tests use this mode.
func NewInteractions(cfg *config.InteractionsConfig) (*Interactions, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open interaction store: %w", err)
	}
	return &Interactions{db: db}, nil
}

// Close closes the underlying Badger database.
func (s *Interactions) Close() error {
	return s.db.Close()
}

// interactionKey builds the storage key for one (user, movie, type)
// triple. The user ID is escaped; the stored record keeps the raw ID.
func interactionKey(userID string, movieID int, t models.InteractionType) []byte {
	return []byte(fmt.Sprintf("%s%s:%010d:%s", interactionKeyPrefix, url.QueryEscape(userID), movieID, t))
}

// userPrefix builds the iteration prefix for one user's records.
func userPrefix(userID string) []byte {
	return []byte(interactionKeyPrefix + url.QueryEscape(userID) + ":")
}

// UpsertIncrement creates the interaction record for the triple with
// Count=1, or atomically increments its count if it already exists.
// The read-modify-write runs inside one serializable transaction and is
// retried on conflict, so concurrent logging of the same triple never
// loses an increment. It reports whether a new record was created.
func (s *Interactions) UpsertIncrement(ctx context.Context, userID string, movieID int, t models.InteractionType) (models.Interaction, bool, error) {
	key := interactionKey(userID, movieID, t)

	var record models.Interaction
	var created bool

	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return models.Interaction{}, false, err
		}

		err := s.db.Update(func(txn *badger.Txn) error {
			record = models.Interaction{
				UserID:    userID,
				MovieID:   movieID,
				Type:      t,
				Count:     1,
				UpdatedAt: time.Now().UTC(),
			}
			created = true

			item, err := txn.Get(key)
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
				// First log event for this triple
			case err != nil:
				return fmt.Errorf("get interaction: %w", err)
			default:
				var existing models.Interaction
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &existing)
				}); err != nil {
					return fmt.Errorf("unmarshal interaction: %w", err)
				}
				record.Count = existing.Count + 1
				created = false
			}

			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("marshal interaction: %w", err)
			}
			return txn.Set(key, data)
		})

		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return models.Interaction{}, false, err
		}
		return record, created, nil
	}

	return models.Interaction{}, false, fmt.Errorf("upsert interaction: retries exhausted: %w", badger.ErrConflict)
}

// FetchByUser returns every interaction record for one user in key
// order. A user with no records yields an empty slice, not an error.
func (s *Interactions) FetchByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	var interactions []models.Interaction

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var record models.Interaction
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("unmarshal interaction: %w", err)
			}
			interactions = append(interactions, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch interactions for %s: %w", userID, err)
	}

	return interactions, nil
}
