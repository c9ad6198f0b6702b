// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/reelrank/reelrank/internal/metrics"
	"github.com/reelrank/reelrank/internal/models"
	"github.com/reelrank/reelrank/internal/recommend"
	"github.com/reelrank/reelrank/internal/store"
)

// ListMovies handles GET /api/v1/movies.
//
// With a user_id that has interaction history it returns personalized
// recommendations; otherwise it falls back to a term search over the
// catalog. Query parameters: user_id, term, page (default 1), limit
// (default from config).
func (router *Router) ListMovies(w http.ResponseWriter, r *http.Request) {
	req := recommend.Request{
		UserID:    r.URL.Query().Get("user_id"),
		Term:      r.URL.Query().Get("term"),
		Page:      getIntParam(r, "page", 1),
		Limit:     getIntParam(r, "limit", router.cfg.API.DefaultPageSize),
		RequestID: chimiddleware.GetReqID(r.Context()),
	}

	ctx, cancel := context.WithTimeout(r.Context(), router.cfg.Server.Timeout)
	defer cancel()

	resp, err := router.engine.Recommend(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Catalog store is unavailable", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to build movie list", err)
		return
	}

	mode := "search"
	if resp.Personalized {
		mode = "personalized"
	}
	metrics.RecordRecommendationServed(mode)

	movies := resp.Movies
	if movies == nil {
		movies = []models.Movie{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.MovieListData{
			TotalMovies:  resp.TotalMovies,
			TotalPages:   resp.TotalPages,
			CurrentPage:  resp.CurrentPage,
			Personalized: resp.Personalized,
			Movies:       movies,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: resp.LatencyMS,
			RequestID:   resp.RequestID,
		},
	})
}

// GetMovie handles GET /api/v1/movies/{movieID}.
func (router *Router) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	movie, err := router.catalog.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
		case errors.Is(err, store.ErrUnavailable):
			respondError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Catalog store is unavailable", err)
		default:
			respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "Failed to get movie", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movie,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CreateMovie handles POST /api/v1/movies. An existing ID is updated in
// place and keeps its catalog position.
func (router *Router) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	movie := req.Movie()
	if err := router.catalog.Upsert(r.Context(), movie); err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "Failed to save movie", err)
		return
	}

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data:   movie,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// DeleteMovie handles DELETE /api/v1/movies/{movieID}.
func (router *Router) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	if err := router.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "Failed to delete movie", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"message": "Movie deleted successfully",
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
