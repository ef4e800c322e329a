// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import "github.com/tomtom215/lovesync/internal/models"

// SwipeRequest is the body of POST /swipe.
type SwipeRequest struct {
	UserID    string `json:"userId" validate:"required,entityid"`
	TargetID  string `json:"targetId" validate:"required,entityid"`
	Direction string `json:"direction" validate:"required"`
}

// CreateUserRequest is the body of POST /users. ID is optional; the server
// generates one when it is empty.
type CreateUserRequest struct {
	ID         string             `json:"id,omitempty"`
	Name       string             `json:"name"`
	Age        int                `json:"age"`
	Location   models.Location    `json:"location"`
	Interests  []string           `json:"interests,omitempty"`
	Attributes map[string]float64 `json:"attributes,omitempty"`
	Discovery  *models.Discovery  `json:"discovery,omitempty"`
}

// toUser converts the request. Validation happens in the directory.
func (r *CreateUserRequest) toUser() *models.User {
	return &models.User{
		ID:         r.ID,
		Name:       r.Name,
		Age:        r.Age,
		Location:   r.Location,
		Interests:  r.Interests,
		Attributes: r.Attributes,
		Discovery:  r.Discovery,
	}
}

// DiscoveryRequest is the body of PUT /users/{userId}/discovery. Omitted
// fields are cleared.
type DiscoveryRequest struct {
	AgeMin        *int     `json:"ageMin,omitempty"`
	AgeMax        *int     `json:"ageMax,omitempty"`
	MaxDistanceKm *float64 `json:"maxDistance,omitempty"`
}

// StartConversationRequest is the body of POST /conversation.
type StartConversationRequest struct {
	UserID string `json:"userId" validate:"required,entityid"`
}

// AnswerRequest is the body of POST /conversation/{sessionId}/answer.
// Emptiness and length are checked against the pending question.
type AnswerRequest struct {
	Text string `json:"text"`
}

// CompatibilityResponse is the body of GET /compatibility.
type CompatibilityResponse struct {
	Score float64 `json:"score"`
}
