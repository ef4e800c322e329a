// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lovesync_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lovesync_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Swipe Metrics
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_swipes_total",
			Help: "Swipes ingested by direction and outcome (applied, duplicate, overwritten)",
		},
		[]string{"direction", "outcome"},
	)

	// Preference Metrics
	PreferenceUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_preference_updates_total",
			Help: "Preference vector mutations by source",
		},
		[]string{"source"}, // "swipe", "conversation", "reset", "seed"
	)

	PreferenceUpdateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lovesync_preference_update_duration_seconds",
			Help:    "Time spent applying a delta, including the per-user lock wait",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Ranking Metrics
	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lovesync_rank_duration_seconds",
			Help:    "Duration of recommendation ranking",
			Buckets: prometheus.DefBuckets,
		},
	)

	RankCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lovesync_rank_candidates",
			Help:    "Candidates surviving hard constraint filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RankCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lovesync_rank_cache_hits_total",
			Help: "Ranking cache hits",
		},
	)

	RankCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lovesync_rank_cache_misses_total",
			Help: "Ranking cache misses",
		},
	)

	RankCacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lovesync_rank_cache_invalidations_total",
			Help: "Explicit ranking cache invalidations caused by preference updates",
		},
	)

	// Conversation Metrics
	ConversationAnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_conversation_answers_total",
			Help: "Conversation answers by question kind",
		},
		[]string{"kind"},
	)

	ConversationSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_conversation_sessions_total",
			Help: "Conversation session lifecycle events",
		},
		[]string{"event"}, // "started", "completed", "ended", "evicted", "deleted"
	)

	ConversationActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lovesync_conversation_active_sessions",
			Help: "Sessions currently held in memory",
		},
	)

	// Event bus Metrics
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_events_published_total",
			Help: "Domain events published by topic",
		},
		[]string{"topic"},
	)

	EventsHandledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_events_handled_total",
			Help: "Domain events handled by handler and result",
		},
		[]string{"handler", "result"},
	)

	// Circuit breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lovesync_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Storage Metrics
	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lovesync_storage_operation_duration_seconds",
			Help:    "Duration of Badger transactions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovesync_storage_errors_total",
			Help: "Failed Badger transactions",
		},
		[]string{"operation"},
	)

	// Directory Metrics
	CandidatePoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lovesync_candidate_pool_size",
			Help: "Number of registered users",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSwipe records an ingested swipe.
func RecordSwipe(direction, outcome string) {
	SwipesTotal.WithLabelValues(direction, outcome).Inc()
}

// RecordPreferenceUpdate records a preference mutation.
func RecordPreferenceUpdate(source string, duration time.Duration) {
	PreferenceUpdatesTotal.WithLabelValues(source).Inc()
	PreferenceUpdateDuration.Observe(duration.Seconds())
}

// RecordRank records a completed ranking.
func RecordRank(duration time.Duration, candidates int) {
	RankDuration.Observe(duration.Seconds())
	RankCandidates.Observe(float64(candidates))
}

// RecordRankCache records a ranking cache lookup.
func RecordRankCache(hit bool) {
	if hit {
		RankCacheHits.Inc()
	} else {
		RankCacheMisses.Inc()
	}
}

// RecordConversationAnswer records an accepted answer.
func RecordConversationAnswer(kind string) {
	ConversationAnswersTotal.WithLabelValues(kind).Inc()
}

// RecordSessionEvent records a session lifecycle event and adjusts the active gauge.
func RecordSessionEvent(event string) {
	ConversationSessionsTotal.WithLabelValues(event).Inc()
	switch event {
	case "started":
		ConversationActiveSessions.Inc()
	case "evicted", "deleted":
		ConversationActiveSessions.Dec()
	}
}

// RecordEventPublished records a published domain event.
func RecordEventPublished(topic string) {
	EventsPublishedTotal.WithLabelValues(topic).Inc()
}

// RecordEventHandled records the result of a handler invocation.
func RecordEventHandled(handler string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsHandledTotal.WithLabelValues(handler, result).Inc()
}

// RecordCircuitBreakerTransition records a breaker state change.
// States follow gobreaker's String(): "closed", "half-open", "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// RecordStorageOperation records a Badger transaction.
func RecordStorageOperation(operation string, duration time.Duration, err error) {
	StorageOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StorageErrors.WithLabelValues(operation).Inc()
	}
}
