// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package models

import "strings"

// ActorSeparator is the literal delimiter used in the Actors field.
// The catalog data set stores the cast as a single delimited string
// ("Tim Robbins, Morgan Freeman, Bob Gunton"); splitting on this
// separator recovers the individual names.
const ActorSeparator = ", "

// Movie is a catalog record. The recommendation engine treats movies as
// read-only; only the catalog store creates or mutates them.
//
// Year and Runtime are strings rather than integers because the source
// data set ships them that way ("1994", "142 min") and the fallback
// search treats every field as searchable text.
type Movie struct {
	// ID is the unique catalog identifier.
	ID int `json:"id"`

	// Title is the movie title.
	Title string `json:"title"`

	// Year is the release year.
	Year string `json:"year"`

	// Runtime is the runtime in minutes.
	Runtime string `json:"runtime"`

	// Genres is the ordered list of genre names.
	Genres []string `json:"genres"`

	// Director is the director's name.
	Director string `json:"director"`

	// Actors is the cast as a single ", "-delimited string.
	Actors string `json:"actors"`

	// Plot is the plot summary.
	Plot string `json:"plot"`

	// PosterURL is a reference to the poster image.
	PosterURL string `json:"poster_url"`
}

// ActorList splits the delimited Actors field into individual names.
// An empty Actors field yields a nil slice, not a one-element slice
// containing the empty string.
func (m Movie) ActorList() []string {
	if m.Actors == "" {
		return nil
	}
	return strings.Split(m.Actors, ActorSeparator)
}
