// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package main is the entry point for the ReelRank server.
//
// ReelRank serves personalized movie recommendations built from logged
// user interactions (see_more, add_to_watch, dislike) combined with
// content similarity over the movie catalog. Users without history get
// a term search over the catalog instead.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 (defaults, config.yaml, env vars)
//  2. Catalog store: DuckDB movie catalog, optionally seeded from JSON
//  3. Interaction store: BadgerDB key-value store for interaction counts
//  4. Recommendation engine: stateless ranking over both stores
//  5. HTTP server: Chi router with CORS, rate limiting, and Prometheus
//     metrics
//
// # Configuration
//
// All settings have working defaults; common overrides:
//
//	export SERVER_PORT=8080
//	export DATABASE_PATH=/data/reelrank.duckdb
//	export DATABASE_SEED_PATH=/data/movies.json
//	export INTERACTIONS_PATH=/data/interactions
//	export LOG_LEVEL=debug
//	./reelrank
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting new connections, waits up to 10 seconds for in-flight
// requests, then closes both stores.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelrank/reelrank/internal/api"
	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/logging"
	"github.com/reelrank/reelrank/internal/recommend"
	"github.com/reelrank/reelrank/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("interactions_path", cfg.Interactions.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting ReelRank")

	catalog, err := store.NewCatalog(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog store")
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog store")
		}
	}()

	if cfg.Database.SeedPath != "" {
		seeded, err := catalog.SeedFromJSON(context.Background(), cfg.Database.SeedPath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Database.SeedPath).Msg("Failed to seed catalog")
		}
		if seeded > 0 {
			logging.Info().Int("movies", seeded).Msg("Catalog seeded from JSON")
		}
	}

	interactions, err := store.NewInteractions(&cfg.Interactions)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize interaction store")
	}
	defer func() {
		if err := interactions.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing interaction store")
		}
	}()

	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultLimit: cfg.API.DefaultPageSize,
		MaxLimit:     cfg.API.MaxPageSize,
	}, logging.Logger(), catalog, interactions)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	router := api.NewRouter(cfg, engine, catalog, interactions)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
