// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"sort"

	"github.com/reelrank/reelrank/internal/models"
)

// CatalogIndex is an inverted index over the catalog's similarity
// attributes (genre, director, actor). Similar produces exactly the
// same result as SimilarMovies, but scores only the candidates that
// share at least one attribute with the reference instead of rescanning
// the whole catalog per reference movie.
//
// The index is built per request from the catalog snapshot; it holds no
// state across requests.
type CatalogIndex struct {
	catalog    []models.Movie
	positions  map[int]int // movie ID -> catalog position
	byGenre    map[string][]int
	byDirector map[string][]int
	byActor    map[string][]int
}

// NewCatalogIndex builds the index. Positions, not IDs, are stored in
// the posting lists so candidate ordering falls out of catalog order.
func NewCatalogIndex(catalog []models.Movie) *CatalogIndex {
	ix := &CatalogIndex{
		catalog:    catalog,
		positions:  make(map[int]int, len(catalog)),
		byGenre:    make(map[string][]int),
		byDirector: make(map[string][]int),
		byActor:    make(map[string][]int),
	}

	for pos, m := range catalog {
		ix.positions[m.ID] = pos
		for _, genre := range m.Genres {
			ix.byGenre[genre] = append(ix.byGenre[genre], pos)
		}
		ix.byDirector[m.Director] = append(ix.byDirector[m.Director], pos)
		for _, actor := range splitActors(m.Actors) {
			ix.byActor[actor] = append(ix.byActor[actor], pos)
		}
	}

	return ix
}

// Similar returns the catalog movies similar to ref in descending
// similarity order, ties in catalog order, zero-score candidates
// excluded. Contract-identical to SimilarMovies(ref, catalog).
func (ix *CatalogIndex) Similar(ref models.Movie) []models.Movie {
	refPos, inCatalog := ix.positions[ref.ID]
	if !inCatalog {
		refPos = -1 // reference from outside the catalog snapshot
	}

	scores := make(map[int]int)

	// One point per attribute category, however many values match.
	mark := func(positions []int, seen map[int]struct{}) {
		for _, pos := range positions {
			if pos == refPos {
				continue
			}
			if _, done := seen[pos]; done {
				continue
			}
			seen[pos] = struct{}{}
			scores[pos]++
		}
	}

	genreSeen := make(map[int]struct{})
	for _, genre := range ref.Genres {
		mark(ix.byGenre[genre], genreSeen)
	}

	mark(ix.byDirector[ref.Director], make(map[int]struct{}))

	actorSeen := make(map[int]struct{})
	for _, actor := range splitActors(ref.Actors) {
		mark(ix.byActor[actor], actorSeen)
	}

	matched := make([]int, 0, len(scores))
	for pos := range scores {
		matched = append(matched, pos)
	}
	sort.Slice(matched, func(i, j int) bool {
		if scores[matched[i]] != scores[matched[j]] {
			return scores[matched[i]] > scores[matched[j]]
		}
		return matched[i] < matched[j]
	})

	movies := make([]models.Movie, len(matched))
	for i, pos := range matched {
		movies[i] = ix.catalog[pos]
	}
	return movies
}

// Movies returns the indexed catalog snapshot in catalog order.
func (ix *CatalogIndex) Movies() []models.Movie {
	return ix.catalog
}
