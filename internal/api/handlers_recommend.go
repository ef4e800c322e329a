// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"net/http"

	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/recommend"
)

// Recommendations handles GET /recommendations/{userId}.
//
// Query parameters: maxDistance (km), ageMin, ageMax, limit. Filters the
// query omits fall back to the user's saved discovery settings. Returns
// [{targetId, score}] best first; an empty array when nothing qualifies.
//
// @Summary Ranked recommendations
// @Description Ranks candidates by compatibility with the user's learned preferences. Filters the query omits fall back to the user's saved discovery settings.
// @Tags Engine
// @Produce json
// @Param userId path string true "User ID"
// @Param maxDistance query number false "Maximum distance in km"
// @Param ageMin query int false "Minimum age (inclusive)"
// @Param ageMax query int false "Maximum age (inclusive)"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} recommend.Recommendation "Best first"
// @Failure 400 {object} models.APIResponse "Invalid constraints"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /recommendations/{userId} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	c, err := parseConstraints(r, user.Discovery)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	recs, err := h.ranker.Rank(r.Context(), userID, c)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	respondJSON(w, http.StatusOK, recs)
}

// parseConstraints reads the query filters and fills the rest from saved.
func parseConstraints(r *http.Request, saved *models.Discovery) (recommend.Constraints, error) {
	var c recommend.Constraints
	var err error

	if c.MaxDistanceKm, err = optionalFloatParam(r, "maxDistance"); err != nil {
		return c, err
	}
	if c.AgeMin, err = optionalIntParam(r, "ageMin"); err != nil {
		return c, err
	}
	if c.AgeMax, err = optionalIntParam(r, "ageMax"); err != nil {
		return c, err
	}
	if c.Limit, err = getIntParam(r, "limit", 0); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	c = c.WithDefaults(saved)
	return c, c.Validate()
}
