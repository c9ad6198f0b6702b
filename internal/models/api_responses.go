// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package models

import "time"

// APIResponse is the standardized response wrapper used by every HTTP
// endpoint. It provides a consistent structure for both successful and
// error responses.
//
// Status is "success" or "error". Data carries the payload on success;
// Error is populated only when Status is "error".
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common codes: VALIDATION_ERROR, NOT_FOUND, STORE_UNAVAILABLE,
// RECOMMENDATION_ERROR, INVALID_JSON.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieListData is the payload for the movie listing endpoint, covering
// both the personalized and the term-search path.
type MovieListData struct {
	TotalMovies  int     `json:"total_movies"`
	TotalPages   int     `json:"total_pages"`
	CurrentPage  int     `json:"current_page"`
	Personalized bool    `json:"personalized"`
	Movies       []Movie `json:"movies"`
}

// LogInteractionRequest is the body of POST /api/v1/interactions/log.
// All three fields are required; the call is rejected if any is absent.
type LogInteractionRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	MovieID         int    `json:"movie_id" validate:"required,min=1"`
	InteractionType string `json:"interaction_type" validate:"required,interaction_type"`
}

// CreateMovieRequest is the body of POST /api/v1/movies.
type CreateMovieRequest struct {
	ID        int      `json:"id" validate:"required,min=1"`
	Title     string   `json:"title" validate:"required"`
	Year      string   `json:"year"`
	Runtime   string   `json:"runtime"`
	Genres    []string `json:"genres"`
	Director  string   `json:"director"`
	Actors    string   `json:"actors"`
	Plot      string   `json:"plot"`
	PosterURL string   `json:"poster_url"`
}

// Movie converts the request DTO into a catalog record.
func (r CreateMovieRequest) Movie() Movie {
	return Movie{
		ID:        r.ID,
		Title:     r.Title,
		Year:      r.Year,
		Runtime:   r.Runtime,
		Genres:    r.Genres,
		Director:  r.Director,
		Actors:    r.Actors,
		Plot:      r.Plot,
		PosterURL: r.PosterURL,
	}
}
