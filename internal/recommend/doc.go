// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package recommend implements the ReelRank ranking engine.
//
// The engine combines two signals into one deduplicated, score-ordered,
// paginated movie list:
//
//   - Explicit interactions ("see more", "add to watch", "dislike"),
//     collapsed per movie into a signed score by the aggregator.
//   - Content similarity (shared genre, same director, shared actor),
//     which expands each interacted movie into similar catalog movies.
//
// A user with no interaction history falls back to a term search over
// the catalog; both paths end in the same paginator.
//
// The engine is stateless across requests: every score and list is
// recomputed per request and never cached, trading CPU for freshness.
// Storage is abstracted behind the CatalogProvider and
// InteractionProvider interfaces so the engine has no dependency on the
// store package.
//
// The similarity expansion is O(catalog) per interacted movie when the
// CatalogIndex is used, and O(catalog^2) worst case overall. This is
// acceptable for catalogs of hundreds of movies; a larger catalog needs
// a persisted index, not a semantics change.
package recommend
