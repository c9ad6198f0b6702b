// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"sort"

	"github.com/reelrank/reelrank/internal/models"
)

// Interaction weights. An unknown type weighs zero so aggregation never
// fails on data written by a newer version.
const (
	weightSeeMore    = 1
	weightAddToWatch = 2
	weightDislike    = -1
)

// Weight returns the signed weight of an interaction type.
func Weight(t models.InteractionType) int {
	switch t {
	case models.InteractionSeeMore:
		return weightSeeMore
	case models.InteractionAddToWatch:
		return weightAddToWatch
	case models.InteractionDislike:
		return weightDislike
	default:
		return 0
	}
}

// ScoreSet holds the per-movie aggregate interaction scores for one
// user, remembering the order in which movies first appeared so ranking
// ties break deterministically.
type ScoreSet struct {
	scores map[int]int
	order  []int
}

// AggregateScores collapses a user's interaction records into a
// per-movie signed score: score = Σ Weight(type) × count. Multiple
// interaction types on the same movie combine additively. The function
// is pure; it never mutates its input.
func AggregateScores(interactions []models.Interaction) *ScoreSet {
	s := &ScoreSet{scores: make(map[int]int, len(interactions))}
	for _, in := range interactions {
		if _, seen := s.scores[in.MovieID]; !seen {
			s.order = append(s.order, in.MovieID)
		}
		s.scores[in.MovieID] += Weight(in.Type) * in.Count
	}
	return s
}

// Score returns the aggregate score for a movie, zero if the user never
// interacted with it.
func (s *ScoreSet) Score(movieID int) int {
	return s.scores[movieID]
}

// Len returns the number of distinct interacted movies.
func (s *ScoreSet) Len() int {
	return len(s.order)
}

// RankedIDs returns every interacted movie ID sorted by score
// descending. Ties keep first-appearance order (stable sort). Movies
// with zero or negative aggregate scores are included: the composer
// deliberately ranks disliked movies rather than dropping them,
// matching the system's observed behavior.
func (s *ScoreSet) RankedIDs() []int {
	ranked := make([]int, len(s.order))
	copy(ranked, s.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.scores[ranked[i]] > s.scores[ranked[j]]
	})
	return ranked
}
