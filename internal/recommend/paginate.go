// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package recommend

import "github.com/reelrank/reelrank/internal/models"

// Page slices one page out of an ordered movie list. Pages are
// 1-indexed; a page past the end yields an empty slice, never an error.
func Page(movies []models.Movie, page, limit int) []models.Movie {
	if page < 1 || limit < 1 {
		return []models.Movie{}
	}
	start := (page - 1) * limit
	if start >= len(movies) {
		return []models.Movie{}
	}
	end := start + limit
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// TotalPages returns ceil(total/limit), with an empty list yielding
// zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
