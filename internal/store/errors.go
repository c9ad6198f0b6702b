// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package store

import "errors"

// Sentinel errors shared by both stores.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable indicates the underlying storage engine is
	// unreachable or its circuit breaker is open. The current request
	// fails; the process keeps running.
	ErrUnavailable = errors.New("store unavailable")
)
