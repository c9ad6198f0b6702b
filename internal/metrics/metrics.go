// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package metrics provides Prometheus instrumentation for ReelRank.
//
// Metrics are registered on the default registry and exposed by the
// HTTP layer at /metrics via promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// apiRequestsTotal counts HTTP requests by method, path, and status.
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// apiRequestDuration observes HTTP request latency.
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelrank_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// activeRequests tracks in-flight HTTP requests.
	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// interactionsLogged counts logged interactions by type and outcome.
	interactionsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_interactions_logged_total",
			Help: "Total number of logged interactions",
		},
		[]string{"type", "outcome"},
	)

	// recommendationsServed counts movie list responses by path kind.
	recommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_recommendations_served_total",
			Help: "Total number of movie list responses served",
		},
		[]string{"mode"},
	)
)

// RecordAPIRequest records a completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(method, path, status).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		activeRequests.Inc()
	} else {
		activeRequests.Dec()
	}
}

// RecordInteractionLogged records an interaction log call.
// Outcome is "created" or "incremented".
func RecordInteractionLogged(interactionType, outcome string) {
	interactionsLogged.WithLabelValues(interactionType, outcome).Inc()
}

// RecordRecommendationServed records a movie list response.
// Mode is "personalized" or "search".
func RecordRecommendationServed(mode string) {
	recommendationsServed.WithLabelValues(mode).Inc()
}
