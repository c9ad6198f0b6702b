// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/middleware"
	"github.com/reelrank/reelrank/internal/models"
	"github.com/reelrank/reelrank/internal/recommend"
)

// CatalogStore is what the movie endpoints need from the catalog store
// beyond the engine's own provider interface.
type CatalogStore interface {
	GetByID(ctx context.Context, id int) (models.Movie, error)
	Upsert(ctx context.Context, m models.Movie) error
	Delete(ctx context.Context, id int) error
}

// InteractionStore is what the interaction endpoints need.
type InteractionStore interface {
	UpsertIncrement(ctx context.Context, userID string, movieID int, t models.InteractionType) (models.Interaction, bool, error)
	FetchByUser(ctx context.Context, userID string) ([]models.Interaction, error)
}

// Router wires the HTTP handlers to their collaborators.
type Router struct {
	cfg          *config.Config
	engine       *recommend.Engine
	catalog      CatalogStore
	interactions InteractionStore
}

// NewRouter creates the API router.
func NewRouter(cfg *config.Config, engine *recommend.Engine, catalog CatalogStore, interactions InteractionStore) *Router {
	return &Router{
		cfg:          cfg,
		engine:       engine,
		catalog:      catalog,
		interactions: interactions,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.Security.RateLimitPerMinute, time.Minute))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.Health)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.ListMovies)
			r.Post("/", router.CreateMovie)
			r.Get("/{movieID}", router.GetMovie)
			r.Delete("/{movieID}", router.DeleteMovie)
		})

		r.Route("/interactions", func(r chi.Router) {
			r.Post("/log", router.LogInteraction)
			r.Get("/{userID}", router.GetUserInteractions)
		})
	})

	return r
}

// Health handles GET /api/v1/health.
func (router *Router) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"status": "ok",
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
