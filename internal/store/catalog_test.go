// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/models"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, c.Close())
	})
	return c
}

func testMovies() []models.Movie {
	return []models.Movie{
		{
			ID:       1,
			Title:    "The Shawshank Redemption",
			Year:     "1994",
			Runtime:  "142 min",
			Genres:   []string{"Crime", "Drama"},
			Director: "Frank Darabont",
			Actors:   "Tim Robbins, Morgan Freeman",
			Plot:     "Two imprisoned men bond over a number of years.",
		},
		{
			ID:       2,
			Title:    "Alien",
			Year:     "1979",
			Runtime:  "117 min",
			Genres:   []string{"Horror", "Sci-Fi"},
			Director: "Ridley Scott",
			Actors:   "Sigourney Weaver, Tom Skerritt",
			Plot:     "The crew of a commercial spacecraft encounters a deadly lifeform.",
		},
		{
			ID:       3,
			Title:    "Heat",
			Year:     "1995",
			Runtime:  "170 min",
			Genres:   []string{"Crime", "Thriller"},
			Director: "Michael Mann",
			Actors:   "Al Pacino, Robert De Niro",
			Plot:     "A group of professional bank robbers start to feel the heat.",
		},
	}
}

func seedCatalog(t *testing.T, c *Catalog) {
	t.Helper()
	for _, m := range testMovies() {
		require.NoError(t, c.Upsert(context.Background(), m))
	}
}

func TestCatalogUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	seedCatalog(t, c)

	t.Run("roundtrip preserves every field", func(t *testing.T) {
		got, err := c.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, testMovies()[0], got)
	})

	t.Run("missing ID maps to ErrNotFound", func(t *testing.T) {
		_, err := c.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repeated lookup misses never open the breaker", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			_, err := c.GetByID(ctx, 999)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NotErrorIs(t, err, ErrUnavailable)
		}

		// The store stays fully available for every other read.
		all, err := c.FetchAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		_, err = c.GetByID(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("update keeps the original catalog position", func(t *testing.T) {
		updated := testMovies()[0]
		updated.Plot = "Hope is a good thing."
		require.NoError(t, c.Upsert(ctx, updated))

		all, err := c.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, 1, all[0].ID)
		assert.Equal(t, "Hope is a good thing.", all[0].Plot)
	})
}

func TestCatalogFetchAll(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	seedCatalog(t, c)

	all, err := c.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, testMovies(), all)
}

func TestCatalogFetchByIDs(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	seedCatalog(t, c)

	t.Run("resolves present IDs, drops absent ones", func(t *testing.T) {
		byID, err := c.FetchByIDs(ctx, []int{1, 3, 999})
		require.NoError(t, err)
		require.Len(t, byID, 2)
		assert.Equal(t, "The Shawshank Redemption", byID[1].Title)
		assert.Equal(t, "Heat", byID[3].Title)
	})

	t.Run("empty ID list", func(t *testing.T) {
		byID, err := c.FetchByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, byID)
	})
}

func TestCatalogFetchFiltered(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	seedCatalog(t, c)

	idsOf := func(movies []models.Movie) []int {
		ids := make([]int, len(movies))
		for i, m := range movies {
			ids[i] = m.ID
		}
		return ids
	}

	tests := []struct {
		name string
		term string
		want []int
	}{
		{"empty term matches everything", "", []int{1, 2, 3}},
		{"title, case-insensitive", "ALIEN", []int{2}},
		{"year", "1995", []int{3}},
		{"runtime", "142", []int{1}},
		{"genre across movies keeps catalog order", "crime", []int{1, 3}},
		{"director", "ridley", []int{2}},
		{"actor", "pacino", []int{3}},
		{"plot", "spacecraft", []int{2}},
		{"no match", "western", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FetchFiltered(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, func() []int {
				if len(got) == 0 {
					return nil
				}
				return idsOf(got)
			}())
		})
	}
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	seedCatalog(t, c)

	t.Run("removes the movie", func(t *testing.T) {
		require.NoError(t, c.Delete(ctx, 2))
		_, err := c.GetByID(ctx, 2)
		assert.ErrorIs(t, err, ErrNotFound)

		n, err := c.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("missing ID maps to ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, c.Delete(ctx, 999), ErrNotFound)
	})
}

func TestCatalogSeedFromJSON(t *testing.T) {
	ctx := context.Background()

	writeSeed := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "movies.json")
		data := `[
			{"id": 1, "title": "Alien", "year": "1979", "genres": ["Horror", "Sci-Fi"]},
			{"id": 2, "title": "Heat", "year": "1995", "genres": ["Crime"]}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		return path
	}

	t.Run("loads into an empty catalog", func(t *testing.T) {
		c := newTestCatalog(t)

		seeded, err := c.SeedFromJSON(ctx, writeSeed(t))
		require.NoError(t, err)
		assert.Equal(t, 2, seeded)

		all, err := c.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Alien", all[0].Title)
	})

	t.Run("skips a populated catalog", func(t *testing.T) {
		c := newTestCatalog(t)
		seedCatalog(t, c)

		seeded, err := c.SeedFromJSON(ctx, writeSeed(t))
		require.NoError(t, err)
		assert.Zero(t, seeded)

		n, err := c.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		c := newTestCatalog(t)
		_, err := c.SeedFromJSON(ctx, filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
