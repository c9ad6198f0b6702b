// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package models defines the shared data structures for ReelRank.
//
// The package contains the two persistent entities (Movie, Interaction),
// the standardized API response envelope, and the request DTOs used by
// the HTTP layer. It has no dependencies on other internal packages so
// that the store, engine, and API layers can all share these types
// without import cycles.
package models
