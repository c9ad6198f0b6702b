// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package api provides the HTTP surface of ReelRank using the Chi
// router.
//
// Endpoints:
//
//	GET    /api/v1/health                  liveness probe
//	GET    /api/v1/movies                  recommendations or term search
//	GET    /api/v1/movies/{movieID}        single movie
//	POST   /api/v1/movies                  create or update a movie
//	DELETE /api/v1/movies/{movieID}        delete a movie
//	POST   /api/v1/interactions/log        log (or increment) an interaction
//	GET    /api/v1/interactions/{userID}   a user's interaction records
//	GET    /metrics                        Prometheus metrics
//
// Every response uses the models.APIResponse envelope.
package api
