// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"sort"
	"strings"

	"github.com/reelrank/reelrank/internal/models"
)

// SimilarityScore scores a candidate against a reference movie on three
// content attributes, one point each:
//
//   - at least one shared genre
//   - exactly equal director (case-sensitive)
//   - at least one shared actor (actors split on ", ")
//
// The result is in [0, 3]. All comparisons are case-sensitive; the
// catalog is the single source of spelling.
func SimilarityScore(ref, candidate models.Movie) int {
	score := 0
	if sharesAny(ref.Genres, candidate.Genres) {
		score++
	}
	if ref.Director == candidate.Director {
		score++
	}
	if sharesAny(splitActors(ref.Actors), splitActors(candidate.Actors)) {
		score++
	}
	return score
}

// SimilarMovies returns the catalog movies similar to ref, sorted by
// similarity score descending. Candidates scoring zero are excluded,
// not ranked last, and the reference itself never appears. Ties keep
// catalog encounter order (stable sort), which makes the result
// deterministic for a fixed catalog.
func SimilarMovies(ref models.Movie, catalog []models.Movie) []models.Movie {
	type scored struct {
		movie models.Movie
		score int
	}

	var matches []scored
	for _, candidate := range catalog {
		if candidate.ID == ref.ID {
			continue
		}
		if score := SimilarityScore(ref, candidate); score > 0 {
			matches = append(matches, scored{movie: candidate, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	movies := make([]models.Movie, len(matches))
	for i, m := range matches {
		movies[i] = m.movie
	}
	return movies
}

// splitActors splits the delimited actors field without filtering empty
// elements, mirroring how the similarity rule is defined over the raw
// field value.
func splitActors(actors string) []string {
	return strings.Split(actors, models.ActorSeparator)
}

// sharesAny reports whether the two slices intersect.
func sharesAny(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
