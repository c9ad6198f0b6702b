// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelrank/reelrank/internal/models"
)

func moviesWithIDs(ids ...int) []models.Movie {
	movies := make([]models.Movie, len(ids))
	for i, id := range ids {
		movies[i] = models.Movie{ID: id}
	}
	return movies
}

func TestPage(t *testing.T) {
	movies := moviesWithIDs(1, 2, 3, 4, 5, 6, 7)

	t.Run("first page", func(t *testing.T) {
		assert.Equal(t, moviesWithIDs(1, 2, 3, 4, 5), Page(movies, 1, 5))
	})

	t.Run("last partial page", func(t *testing.T) {
		assert.Equal(t, moviesWithIDs(6, 7), Page(movies, 2, 5))
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		assert.Empty(t, Page(movies, 3, 5))
	})

	t.Run("zero page is treated as invalid", func(t *testing.T) {
		assert.Empty(t, Page(movies, 0, 5))
	})

	t.Run("zero limit is treated as invalid", func(t *testing.T) {
		assert.Empty(t, Page(movies, 1, 0))
	})

	t.Run("limit larger than list returns the whole list", func(t *testing.T) {
		assert.Equal(t, movies, Page(movies, 1, 100))
	})

	t.Run("concatenating pages reconstructs the list", func(t *testing.T) {
		var rebuilt []models.Movie
		for page := 1; page <= TotalPages(len(movies), 3); page++ {
			rebuilt = append(rebuilt, Page(movies, page, 3)...)
		}
		assert.Equal(t, movies, rebuilt)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, Page(nil, 1, 5))
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"exact multiple", 10, 5, 2},
		{"partial last page rounds up", 7, 5, 2},
		{"single page", 3, 5, 1},
		{"empty list has zero pages", 0, 5, 0},
		{"limit of one", 7, 1, 7},
		{"invalid limit", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}
