// Package metrics provides Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationsTotal counts completed generation cycles.
	GenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "draftforge_generations_total",
			Help: "Total number of completed generation cycles.",
		},
	)

	// ExtractionsTotal counts per-file extractions by outcome.
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftforge_extractions_total",
			Help: "Total number of file extractions.",
		},
		[]string{"ext", "outcome"}, // outcome: "ok" or "degraded"
	)

	// ProviderRequestsTotal counts provider calls by outcome.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftforge_provider_requests_total",
			Help: "Total number of provider completion calls.",
		},
		[]string{"provider", "outcome"}, // outcome: "ok" or "error"
	)

	// ProviderLatency tracks provider completion latency in seconds.
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "draftforge_provider_latency_seconds",
			Help:    "Provider completion latency in seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// TokenUsageTotal tracks tokens reported by providers.
	TokenUsageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftforge_token_usage_total",
			Help: "Total number of tokens reported by providers.",
		},
		[]string{"provider", "direction"}, // direction: "input" or "output"
	)
)
