// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/lovesync/internal/recommend"
)

// readinessTimeout bounds each readiness check.
const readinessTimeout = 2 * time.Second

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status        string            `json:"status"`
	Uptime        float64           `json:"uptime"`
	Users         int               `json:"users"`
	Conversations int               `json:"conversations"`
	Ranker        recommend.Metrics `json:"ranker"`
}

// ReadinessStatus is the body of GET /health/ready.
type ReadinessStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthLive handles liveness check requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests (Kubernetes-style)
// Returns 200 OK only if every readiness check passes, 503 otherwise.
//
// @Summary Readiness check
// @Description Runs every registered readiness check. Returns 503 when any fails.
// @Tags Core
// @Produce json
// @Success 200 {object} ReadinessStatus
// @Failure 503 {object} ReadinessStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.readiness))
	for name := range h.readiness {
		names = append(names, name)
	}
	sort.Strings(names)

	status := ReadinessStatus{Status: "ready", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		err := h.readiness[name](ctx)
		cancel()
		if err != nil {
			status.Status = "not_ready"
			status.Checks[name] = err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}

	code := http.StatusOK
	if status.Status != "ready" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

// Health handles GET /health with runtime statistics.
//
// @Summary Service health
// @Description Uptime, pool size, open conversations and ranker counters.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatus{
		Status:        "healthy",
		Uptime:        time.Since(h.startTime).Seconds(),
		Users:         h.users.Size(),
		Conversations: h.conversations.Count(),
		Ranker:        h.ranker.GetMetrics(),
	})
}
