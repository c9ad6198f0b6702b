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

func TestMatchesTerm(t *testing.T) {
	movie := models.Movie{
		ID:       1,
		Title:    "The Shawshank Redemption",
		Year:     "1994",
		Runtime:  "142 min",
		Genres:   []string{"Crime", "Drama"},
		Director: "Frank Darabont",
		Actors:   "Tim Robbins, Morgan Freeman",
		Plot:     "Two imprisoned men bond over a number of years.",
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"empty term matches everything", "", true},
		{"title substring", "shawshank", true},
		{"title is case-insensitive", "SHAWSHANK", true},
		{"year", "1994", true},
		{"runtime", "142", true},
		{"genre", "crime", true},
		{"director", "darabont", true},
		{"actor", "morgan", true},
		{"plot", "imprisoned", true},
		{"partial word", "redemp", true},
		{"no match", "spaceship", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesTerm(movie, tt.term))
		})
	}
}

func TestFilterCatalog(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Title: "Alien", Genres: []string{"Sci-Fi"}},
		{ID: 2, Title: "Aliens", Genres: []string{"Sci-Fi", "Action"}},
		{ID: 3, Title: "Heat", Genres: []string{"Crime"}},
	}

	t.Run("empty term returns the full catalog", func(t *testing.T) {
		assert.Equal(t, catalog, FilterCatalog(catalog, ""))
	})

	t.Run("matches preserve catalog order", func(t *testing.T) {
		got := FilterCatalog(catalog, "alien")
		assert.Equal(t, []models.Movie{catalog[0], catalog[1]}, got)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, FilterCatalog(catalog, "western"))
	})
}
