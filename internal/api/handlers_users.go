// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"net/http"

	"github.com/tomtom215/lovesync/internal/models"
)

// CreateUser handles POST /users.
//
// @Summary Create a user
// @Description Stores a profile and seeds its preference vector from attributes or declared interests.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Profile"
// @Success 201 {object} models.User
// @Failure 400 {object} models.APIResponse "Invalid profile"
// @Failure 409 {object} models.APIResponse "ID already exists"
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := h.users.Create(r.Context(), req.toUser())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/users/"+user.ID)
	respondJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{userId}.
//
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{userId}. The profile, preference
// vector, swipe log and open conversations are removed.
//
// @Summary Delete a user
// @Tags Users
// @Param userId path string true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), userID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDiscovery handles GET /users/{userId}/discovery. Unset filters are
// omitted; a user without saved settings gets an empty object.
//
// @Summary Get discovery settings
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Discovery
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId}/discovery [get]
func (h *Handler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, discoveryOrEmpty(user.Discovery))
}

// PutDiscovery handles PUT /users/{userId}/discovery. The saved filters are
// used by GET /recommendations/{userId} when the query omits them.
//
// @Summary Save discovery settings
// @Description Replaces the saved age range and search radius. Omitted fields are cleared.
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body DiscoveryRequest true "Settings"
// @Success 200 {object} models.Discovery
// @Failure 400 {object} models.APIResponse "Invalid settings"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId}/discovery [put]
func (h *Handler) PutDiscovery(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var req DiscoveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := h.users.SetDiscovery(r.Context(), userID, &models.Discovery{
		AgeMin:        req.AgeMin,
		AgeMax:        req.AgeMax,
		MaxDistanceKm: req.MaxDistanceKm,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, discoveryOrEmpty(user.Discovery))
}

func discoveryOrEmpty(d *models.Discovery) *models.Discovery {
	if d == nil {
		return &models.Discovery{}
	}
	return d
}

// GetPreferences handles GET /users/{userId}/preferences.
//
// @Summary Get the preference vector
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.PreferenceVector
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId}/preferences [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	vec, err := h.prefs.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, vec)
}

// ResetPreferences handles POST /users/{userId}/reset-ai. Learned weights
// are replaced by the seed derived from the profile.
//
// @Summary Reset learned preferences
// @Description Replaces the learned vector with the profile-derived seed.
// @Tags Users
// @Param userId path string true "User ID"
// @Success 204 "Preferences reset"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId}/reset-ai [post]
func (h *Handler) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if _, err := h.prefs.Reset(r.Context(), userID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SwipeHistory handles GET /users/{userId}/swipes.
//
// @Summary Swipe history
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.SwipeEvent "Oldest first"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /users/{userId}/swipes [get]
func (h *Handler) SwipeHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	history, err := h.swipes.History(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
