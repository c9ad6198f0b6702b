// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/models"
)

func newTestInteractions(t *testing.T) *Interactions {
	t.Helper()
	s, err := NewInteractions(&config.InteractionsConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestUpsertIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("first log creates the record with count one", func(t *testing.T) {
		s := newTestInteractions(t)

		record, created, err := s.UpsertIncrement(ctx, "u1", 7, models.InteractionSeeMore)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, record.Count)
		assert.Equal(t, "u1", record.UserID)
		assert.Equal(t, 7, record.MovieID)
		assert.Equal(t, models.InteractionSeeMore, record.Type)
		assert.False(t, record.UpdatedAt.IsZero())
	})

	t.Run("repeated logs increment the existing record", func(t *testing.T) {
		s := newTestInteractions(t)

		_, created, err := s.UpsertIncrement(ctx, "u1", 7, models.InteractionDislike)
		require.NoError(t, err)
		assert.True(t, created)

		record, created, err := s.UpsertIncrement(ctx, "u1", 7, models.InteractionDislike)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 2, record.Count)

		// Still exactly one record for the triple
		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 2, all[0].Count)
	})

	t.Run("distinct types on one movie are separate records", func(t *testing.T) {
		s := newTestInteractions(t)

		_, _, err := s.UpsertIncrement(ctx, "u1", 7, models.InteractionSeeMore)
		require.NoError(t, err)
		_, _, err = s.UpsertIncrement(ctx, "u1", 7, models.InteractionAddToWatch)
		require.NoError(t, err)

		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("concurrent increments never lose a count", func(t *testing.T) {
		s := newTestInteractions(t)

		const workers = 25
		var wg sync.WaitGroup
		errCh := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := s.UpsertIncrement(ctx, "u1", 7, models.InteractionSeeMore)
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			require.NoError(t, err)
		}

		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, workers, all[0].Count)
	})
}

func TestFetchByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user yields empty, not an error", func(t *testing.T) {
		s := newTestInteractions(t)

		all, err := s.FetchByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("users are isolated from each other", func(t *testing.T) {
		s := newTestInteractions(t)

		_, _, err := s.UpsertIncrement(ctx, "u1", 1, models.InteractionSeeMore)
		require.NoError(t, err)
		_, _, err = s.UpsertIncrement(ctx, "u2", 2, models.InteractionSeeMore)
		require.NoError(t, err)

		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 1, all[0].MovieID)
	})

	t.Run("user ID prefixes do not collide", func(t *testing.T) {
		// "u1" must not pick up records belonging to "u10".
		s := newTestInteractions(t)

		_, _, err := s.UpsertIncrement(ctx, "u1", 1, models.InteractionSeeMore)
		require.NoError(t, err)
		_, _, err = s.UpsertIncrement(ctx, "u10", 2, models.InteractionSeeMore)
		require.NoError(t, err)

		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 1, all[0].MovieID)
	})

	t.Run("delimiter characters in user IDs do not collide", func(t *testing.T) {
		// A ":" inside an ID must not make "a" a key prefix of "a:b".
		s := newTestInteractions(t)

		_, _, err := s.UpsertIncrement(ctx, "a:b", 1, models.InteractionSeeMore)
		require.NoError(t, err)

		leaked, err := s.FetchByUser(ctx, "a")
		require.NoError(t, err)
		assert.Empty(t, leaked)

		own, err := s.FetchByUser(ctx, "a:b")
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, "a:b", own[0].UserID)
		assert.Equal(t, 1, own[0].MovieID)
	})

	t.Run("records come back in key order", func(t *testing.T) {
		s := newTestInteractions(t)

		for _, movieID := range []int{12, 3, 7} {
			_, _, err := s.UpsertIncrement(ctx, "u1", movieID, models.InteractionSeeMore)
			require.NoError(t, err)
		}

		all, err := s.FetchByUser(ctx, "u1")
		require.NoError(t, err)
		ids := make([]int, len(all))
		for i, r := range all {
			ids[i] = r.MovieID
		}
		// Zero-padded movie IDs sort numerically.
		assert.Equal(t, []int{3, 7, 12}, ids)
	})
}
