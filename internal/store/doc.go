// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package store implements the persistence collaborators the
// recommendation engine depends on.
//
// Two stores exist:
//
//   - Catalog: the movie catalog, backed by DuckDB. The engine only
//     reads it (fetch-all, fetch-by-ids, fetch-filtered); the API layer
//     additionally supports upsert and delete for catalog maintenance.
//   - Interactions: per-user interaction records, backed by Badger.
//     The one write path, UpsertIncrement, applies the count increment
//     atomically inside a single transaction so concurrent logging of
//     the same (user, movie, type) triple never loses updates.
//
// Store failures surface as wrapped sentinel errors (ErrNotFound,
// ErrUnavailable) so callers can map them to HTTP status codes without
// inspecting driver-specific errors.
package store
