// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelrank/reelrank/internal/models"
)

// CatalogProvider is the read contract the engine needs from the movie
// catalog. Implemented by the store package; tests use in-memory fakes.
type CatalogProvider interface {
	// FetchAll returns the whole catalog in catalog order.
	FetchAll(ctx context.Context) ([]models.Movie, error)

	// FetchByIDs returns the movies for the given IDs keyed by ID.
	// Unresolved IDs are absent, not an error.
	FetchByIDs(ctx context.Context, ids []int) (map[int]models.Movie, error)

	// FetchFiltered returns the movies matching term (case-insensitive
	// substring over the searchable fields) in catalog order.
	FetchFiltered(ctx context.Context, term string) ([]models.Movie, error)
}

// InteractionProvider is the read contract for interaction history.
type InteractionProvider interface {
	// FetchByUser returns every interaction record for one user.
	FetchByUser(ctx context.Context, userID string) ([]models.Interaction, error)
}

// Config holds engine tunables.
type Config struct {
	// DefaultLimit is the page size when the request omits one.
	DefaultLimit int

	// MaxLimit caps the requested page size.
	MaxLimit int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: 5,
		MaxLimit:     100,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit (%d) must be >= default limit (%d)", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

// Request is one recommendation-or-search request.
type Request struct {
	// UserID selects the personalized path when the user has history.
	// Empty means anonymous.
	UserID string

	// Term filters the fallback search path only.
	Term string

	// Page is 1-indexed; zero or negative defaults to 1.
	Page int

	// Limit is the page size; zero defaults to Config.DefaultLimit.
	Limit int

	// RequestID is a tracing identifier, generated when empty.
	RequestID string
}

// Response is one page of results plus list totals.
type Response struct {
	// Movies is this page only.
	Movies []models.Movie

	// TotalMovies counts the full merged (or filtered) list.
	TotalMovies int

	// TotalPages is ceil(TotalMovies / limit).
	TotalPages int

	// CurrentPage echoes the effective page number.
	CurrentPage int

	// Personalized reports which path produced the list.
	Personalized bool

	// RequestID is the tracing identifier.
	RequestID string

	// LatencyMS is the total composition latency in milliseconds.
	LatencyMS int64
}

// Engine composes recommendation lists. It holds no per-request state
// and is safe for concurrent use.
type Engine struct {
	config       *Config
	logger       zerolog.Logger
	catalog      CatalogProvider
	interactions InteractionProvider
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, catalog CatalogProvider, interactions InteractionProvider) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog provider is required")
	}
	if interactions == nil {
		return nil, fmt.Errorf("interaction provider is required")
	}

	return &Engine{
		config:       cfg,
		logger:       logger.With().Str("component", "recommend").Logger(),
		catalog:      catalog,
		interactions: interactions,
	}, nil
}

// Recommend produces one page of movies for the request. A user with
// interaction history gets the personalized path (aggregate, expand,
// merge, dedup); everyone else gets the term search. For fixed store
// contents and a fixed request, repeated calls return identical output.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	req = e.prepareRequest(req)

	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Logger()

	var history []models.Interaction
	if req.UserID != "" {
		var err error
		history, err = retryRead(ctx, func(ctx context.Context) ([]models.Interaction, error) {
			return e.interactions.FetchByUser(ctx, req.UserID)
		})
		if err != nil {
			return nil, fmt.Errorf("fetch interactions: %w", err)
		}
	}

	if len(history) == 0 {
		resp, err := e.search(ctx, req, start)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("term", req.Term).
			Int("total", resp.TotalMovies).
			Msg("search path complete")
		return resp, nil
	}

	resp, err := e.personalize(ctx, req, history, start, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("interactions", len(history)).
		Int("total", resp.TotalMovies).
		Int64("latency_ms", resp.LatencyMS).
		Msg("personalized path complete")
	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
func (e *Engine) prepareRequest(req Request) Request {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = e.config.DefaultLimit
	}
	if req.Limit > e.config.MaxLimit {
		req.Limit = e.config.MaxLimit
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	return req
}

// search is the fallback path: term filter over the catalog, then
// pagination. The filter predicate runs store-side in FetchFiltered;
// MatchesTerm is the same rule in Go.
func (e *Engine) search(ctx context.Context, req Request, start time.Time) (*Response, error) {
	matched, err := retryRead(ctx, func(ctx context.Context) ([]models.Movie, error) {
		return e.catalog.FetchFiltered(ctx, req.Term)
	})
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}

	return e.respond(req, matched, false, start), nil
}

// personalize is the recommendation path: aggregate interaction scores,
// rank interacted movies, expand each through content similarity
// against the full catalog, merge, and dedup keeping first occurrence.
func (e *Engine) personalize(ctx context.Context, req Request, history []models.Interaction, start time.Time, logger zerolog.Logger) (*Response, error) {
	scores := AggregateScores(history)
	baseIDs := scores.RankedIDs()

	baseByID, err := retryRead(ctx, func(ctx context.Context) (map[int]models.Movie, error) {
		return e.catalog.FetchByIDs(ctx, baseIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch base movies: %w", err)
	}

	// A movie that was interacted with but has since left the catalog
	// is skipped; one stale reference must not fail the whole request.
	base := make([]models.Movie, 0, len(baseIDs))
	for _, id := range baseIDs {
		m, ok := baseByID[id]
		if !ok {
			logger.Debug().Int("movie_id", id).Msg("interacted movie missing from catalog, skipping")
			continue
		}
		base = append(base, m)
	}

	catalog, err := retryRead(ctx, func(ctx context.Context) ([]models.Movie, error) {
		return e.catalog.FetchAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	index := NewCatalogIndex(catalog)

	merged := make([]models.Movie, 0, len(base))
	seen := make(map[int]struct{}, len(base))
	appendUnique := func(movies []models.Movie) {
		for _, m := range movies {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}

	// Base movies first so an interacted movie keeps its rank even when
	// it also shows up in some expansion.
	appendUnique(base)
	for _, m := range base {
		appendUnique(index.Similar(m))
	}

	return e.respond(req, merged, true, start), nil
}

// respond paginates the full list into the final response.
func (e *Engine) respond(req Request, movies []models.Movie, personalized bool, start time.Time) *Response {
	return &Response{
		Movies:       Page(movies, req.Page, req.Limit),
		TotalMovies:  len(movies),
		TotalPages:   TotalPages(len(movies), req.Limit),
		CurrentPage:  req.Page,
		Personalized: personalized,
		RequestID:    req.RequestID,
		LatencyMS:    time.Since(start).Milliseconds(),
	}
}

// retryRead runs an idempotent store read with one immediate retry.
// Context cancellation is never retried.
func retryRead[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if err == nil || ctx.Err() != nil {
		return v, err
	}
	return fn(ctx)
}
