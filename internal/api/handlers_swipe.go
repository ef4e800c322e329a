// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"net/http"

	"github.com/tomtom215/lovesync/internal/swipe"
)

// Swipe handles POST /swipe.
//
// Records a like or pass and feeds it to the preference model. Repeating a
// swipe is a no-op; both answer 204.
//
// @Summary Record a swipe
// @Description Records a like or pass and feeds the target's attributes into the swiper's preference vector. Repeating the recorded direction is a no-op; a reversed direction replaces the record.
// @Tags Engine
// @Accept json
// @Produce json
// @Param request body SwipeRequest true "Swipe"
// @Success 204 "Swipe recorded"
// @Failure 400 {object} models.APIResponse "Invalid swipe"
// @Failure 404 {object} models.APIResponse "Unknown user or target"
// @Failure 503 {object} models.APIResponse "Storage unavailable"
// @Router /swipe [post]
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	if _, err := h.swipes.Ingest(r.Context(), swipe.Request{
		UserID:    req.UserID,
		TargetID:  req.TargetID,
		Direction: req.Direction,
	}); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
