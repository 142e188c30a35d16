package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Graph gateway
	GraphQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graph_query_duration_seconds",
			Help:    "Duration of graph gateway calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query", "mode"},
	)

	GraphQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_query_errors_total",
			Help: "Total number of failed graph gateway calls",
		},
		[]string{"query", "reason"}, // "timeout", "breaker_open", "driver"
	)

	// Recommendation composer
	StrategyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_strategy_failures_total",
			Help: "Strategies that contributed nothing to a composed recommendation because they failed",
		},
		[]string{"strategy"},
	)

	// Food detail cache
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_cache_requests_total",
			Help: "Food detail cache lookups by result",
		},
		[]string{"backend", "result"}, // "hit", "miss"
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_cache_invalidations_total",
			Help: "Food detail cache entries invalidated by writes",
		},
		[]string{"backend"},
	)
)

// RecordCacheLookup records a cache hit or miss for the given backend
func RecordCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequests.WithLabelValues(backend, result).Inc()
}
