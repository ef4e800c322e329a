// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import "net/http"

// StartConversation handles POST /conversation.
// Responds 201 with {sessionId, status, question}.
//
// @Summary Start a learning conversation
// @Description Opens a session and returns its first question. Preferences are not reset.
// @Tags Conversation
// @Accept json
// @Produce json
// @Param request body StartConversationRequest true "Owner"
// @Success 201 {object} conversation.Step
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Failure 503 {object} models.APIResponse "Too many active conversations"
// @Router /conversation [post]
func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req StartConversationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	step, err := h.conversations.Start(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/conversation/"+step.SessionID)
	respondJSON(w, http.StatusCreated, step)
}

// AnswerQuestion handles POST /conversation/{sessionId}/answer.
// Responds {status:"awaiting_answer", question} or {status:"completed"}.
//
// @Summary Answer the pending question
// @Description Classifies the answer, applies the extracted signal to the user's preferences and returns the next step.
// @Tags Conversation
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body AnswerRequest true "Answer"
// @Success 200 {object} conversation.Step
// @Failure 400 {object} models.APIResponse "Answer does not fit the question"
// @Failure 404 {object} models.APIResponse "Unknown or expired session"
// @Failure 409 {object} models.APIResponse "Session completed or busy"
// @Router /conversation/{sessionId}/answer [post]
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "sessionId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var req AnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	step, err := h.conversations.Answer(r.Context(), sessionID, req.Text)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, step)
}

// GetConversation handles GET /conversation/{sessionId}.
//
// @Summary Get a conversation
// @Tags Conversation
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} conversation.Session
// @Failure 404 {object} models.APIResponse "Unknown or expired session"
// @Router /conversation/{sessionId} [get]
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "sessionId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	sess, err := h.conversations.Get(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// EndConversation handles DELETE /conversation/{sessionId}. Ending an
// already completed session also answers 204.
//
// @Summary End a conversation
// @Description Marks the session completed. Signals already applied are kept.
// @Tags Conversation
// @Param sessionId path string true "Session ID"
// @Success 204 "Conversation ended"
// @Failure 404 {object} models.APIResponse "Unknown or expired session"
// @Failure 409 {object} models.APIResponse "An answer is being classified"
// @Router /conversation/{sessionId} [delete]
func (h *Handler) EndConversation(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "sessionId")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if _, err := h.conversations.End(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
