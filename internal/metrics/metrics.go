// Package metrics holds the process-wide Prometheus collectors, registered
// via promauto and exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Completion call latency in milliseconds.
	CompletionCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_call_latency_ms",
			Help:    "Model serving endpoint call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)

	// Excuse generation outcomes.
	ExcuseGeneratedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excuse_generated_count",
			Help: "Total number of excuse generation requests handled",
		},
		[]string{"outcome"}, // outcome: success, validation_error, config_error, timeout, upstream_error, malformed, network_error
	)
)

// RecordHTTPRequestDuration records one served HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordCompletionLatency records one model serving endpoint call.
func RecordCompletionLatency(status string, duration time.Duration) {
	CompletionCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// IncrementExcuseGenerated counts one handled generation request.
func IncrementExcuseGenerated(outcome string) {
	ExcuseGeneratedCount.WithLabelValues(outcome).Inc()
}
