// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package models

import "time"

// InteractionType classifies an explicit user signal on a movie.
type InteractionType string

// Known interaction types. The aggregator tolerates unknown values
// (they carry zero weight); the logging endpoint rejects them.
const (
	// InteractionSeeMore records that the user opened the detail view.
	InteractionSeeMore InteractionType = "see_more"
	// InteractionAddToWatch records that the user added the movie to
	// their watch list.
	InteractionAddToWatch InteractionType = "add_to_watch"
	// InteractionDislike records an explicit negative signal.
	InteractionDislike InteractionType = "dislike"
)

// Valid reports whether t is one of the known interaction types.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionSeeMore, InteractionAddToWatch, InteractionDislike:
		return true
	default:
		return false
	}
}

// Interaction relates one user to one movie with a type and a count.
//
// There is at most one Interaction record per (UserID, MovieID, Type)
// triple: repeated logging of the same triple increments Count instead
// of creating a new record. Records are created with Count=1 and are
// never deleted by the engine.
type Interaction struct {
	// UserID identifies the user.
	UserID string `json:"user_id"`

	// MovieID identifies the movie.
	MovieID int `json:"movie_id"`

	// Type is the interaction classification.
	Type InteractionType `json:"interaction_type"`

	// Count is the number of times this triple has been logged.
	Count int `json:"interaction_count"`

	// UpdatedAt is when the record was last created or incremented.
	UpdatedAt time.Time `json:"updated_at"`
}
