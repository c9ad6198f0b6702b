// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/reelrank/reelrank/internal/metrics"
	"github.com/reelrank/reelrank/internal/models"
)

// LogInteraction handles POST /api/v1/interactions/log.
//
// The call is all-or-nothing: all three fields are required and an
// invalid body changes no state. The first log event for a (user,
// movie, type) triple creates the record with count 1 (201); repeated
// events increment the count on the existing record (200).
func (router *Router) LogInteraction(w http.ResponseWriter, r *http.Request) {
	var req models.LogInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	record, created, err := router.interactions.UpsertIncrement(
		r.Context(), req.UserID, req.MovieID, models.InteractionType(req.InteractionType))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "Failed to log interaction", err)
		return
	}

	status := http.StatusOK
	message := "Interaction count updated"
	outcome := "incremented"
	if created {
		status = http.StatusCreated
		message = "Interaction logged successfully"
		outcome = "created"
	}
	metrics.RecordInteractionLogged(req.InteractionType, outcome)

	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"message":     message,
			"interaction": record,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// GetUserInteractions handles GET /api/v1/interactions/{userID}.
// A user with no history gets an empty list, not a 404.
func (router *Router) GetUserInteractions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "User ID is required", nil)
		return
	}

	interactions, err := router.interactions.FetchByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "Failed to fetch interactions", err)
		return
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"interactions": interactions,
			"count":        len(interactions),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
