// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"strings"

	"github.com/reelrank/reelrank/internal/models"
)

// MatchesTerm reports whether at least one of the seven searchable
// fields (title, year, runtime, genres, director, actors, plot)
// contains term as a case-insensitive substring. The empty term matches
// every movie.
func MatchesTerm(m models.Movie, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{
		m.Title,
		m.Year,
		m.Runtime,
		strings.Join(m.Genres, ", "),
		m.Director,
		m.Actors,
		m.Plot,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterCatalog returns the movies matching term, preserving catalog
// order. This is the reference predicate for the fallback search path;
// the catalog store implements the same predicate in SQL.
func FilterCatalog(catalog []models.Movie, term string) []models.Movie {
	if term == "" {
		return catalog
	}
	var matched []models.Movie
	for _, m := range catalog {
		if MatchesTerm(m, term) {
			matched = append(matched, m)
		}
	}
	return matched
}
