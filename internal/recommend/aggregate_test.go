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

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		typ  models.InteractionType
		want int
	}{
		{"see_more", models.InteractionSeeMore, 1},
		{"add_to_watch", models.InteractionAddToWatch, 2},
		{"dislike", models.InteractionDislike, -1},
		{"unknown type weighs zero", models.InteractionType("super_like"), 0},
		{"empty type weighs zero", models.InteractionType(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Weight(tt.typ))
		})
	}
}

func TestAggregateScores(t *testing.T) {
	t.Run("single interaction", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{UserID: "u1", MovieID: 1, Type: models.InteractionSeeMore, Count: 3},
		})
		assert.Equal(t, 3, scores.Score(1))
		assert.Equal(t, 1, scores.Len())
	})

	t.Run("types combine additively on one movie", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{UserID: "u1", MovieID: 7, Type: models.InteractionAddToWatch, Count: 2},
			{UserID: "u1", MovieID: 7, Type: models.InteractionDislike, Count: 1},
		})
		// 2*2 + (-1)*1
		assert.Equal(t, 3, scores.Score(7))
		assert.Equal(t, 1, scores.Len())
	})

	t.Run("unknown types contribute nothing", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{UserID: "u1", MovieID: 4, Type: models.InteractionSeeMore, Count: 2},
			{UserID: "u1", MovieID: 4, Type: models.InteractionType("share"), Count: 100},
		})
		assert.Equal(t, 2, scores.Score(4))
	})

	t.Run("never interacted scores zero", func(t *testing.T) {
		scores := AggregateScores(nil)
		assert.Equal(t, 0, scores.Score(42))
		assert.Equal(t, 0, scores.Len())
	})
}

func TestRankedIDs(t *testing.T) {
	t.Run("orders by score descending", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{MovieID: 1, Type: models.InteractionSeeMore, Count: 1},    // +1
			{MovieID: 2, Type: models.InteractionAddToWatch, Count: 3}, // +6
			{MovieID: 3, Type: models.InteractionSeeMore, Count: 2},    // +2
		})
		assert.Equal(t, []int{2, 3, 1}, scores.RankedIDs())
	})

	t.Run("negative scores are ranked, not dropped", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{MovieID: 1, Type: models.InteractionDislike, Count: 2}, // -2
			{MovieID: 2, Type: models.InteractionSeeMore, Count: 1}, // +1
			{MovieID: 3, Type: models.InteractionDislike, Count: 1}, // -1
		})
		assert.Equal(t, []int{2, 3, 1}, scores.RankedIDs())
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{MovieID: 9, Type: models.InteractionSeeMore, Count: 1},
			{MovieID: 3, Type: models.InteractionSeeMore, Count: 1},
			{MovieID: 6, Type: models.InteractionSeeMore, Count: 1},
		})
		assert.Equal(t, []int{9, 3, 6}, scores.RankedIDs())
	})

	t.Run("repeated calls return identical order", func(t *testing.T) {
		scores := AggregateScores([]models.Interaction{
			{MovieID: 5, Type: models.InteractionSeeMore, Count: 1},
			{MovieID: 8, Type: models.InteractionSeeMore, Count: 1},
			{MovieID: 2, Type: models.InteractionAddToWatch, Count: 1},
		})
		first := scores.RankedIDs()
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, scores.RankedIDs())
		}
	})
}
