// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/lovesync/internal/compat"
	"github.com/tomtom215/lovesync/internal/models"
)

// Compatibility handles GET /compatibility?a={id}&b={id}.
//
// @Summary Pairwise compatibility
// @Description Cosine similarity of the two preference vectors rescaled to [0,1]. Symmetric; 0.5 when either vector is empty.
// @Tags Engine
// @Produce json
// @Param a query string true "First user ID"
// @Param b query string true "Second user ID"
// @Success 200 {object} CompatibilityResponse
// @Failure 400 {object} models.APIResponse "Missing or invalid IDs"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /compatibility [get]
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	a, b, err := pairParams(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	score, err := h.compat.Compatibility(r.Context(), a, b)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, CompatibilityResponse{Score: score})
}

// CompatibilityExplain handles GET /compatibility/explain?a={id}&b={id}&limit=n.
// It reports the score plus the shared attributes contributing most to it.
//
// @Summary Explain compatibility
// @Description Returns the score with the shared attributes contributing most to it.
// @Tags Engine
// @Produce json
// @Param a query string true "First user ID"
// @Param b query string true "Second user ID"
// @Param limit query int false "Number of shared attributes" default(5)
// @Success 200 {object} compat.Explanation
// @Failure 400 {object} models.APIResponse "Missing or invalid IDs"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /compatibility/explain [get]
func (h *Handler) CompatibilityExplain(w http.ResponseWriter, r *http.Request) {
	a, b, err := pairParams(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	limit, err := getIntParam(r, "limit", compat.DefaultExplainLimit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if limit < 1 || limit > 50 {
		respondServiceError(w, r, fmt.Errorf("%w: limit must be between 1 and 50", models.ErrInvalidInput))
		return
	}

	explanation, err := h.compat.Explain(r.Context(), a, b, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, explanation)
}

func pairParams(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		return "", "", fmt.Errorf("%w: query parameters a and b are required", models.ErrInvalidInput)
	}
	return a, b, nil
}
