package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	HTTPRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"route", "method", "status"},
	)

	EmbeddingRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_embedding_requests_total",
			Help: "Embedding round trips by provider and outcome",
		},
		[]string{"provider", "status"},
	)

	EmbeddingLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustintent_embedding_latency_ms",
			Help:    "Embedding round trip latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	EmbeddedTextsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_embedded_texts_total",
			Help: "Number of texts sent for embedding",
		},
		[]string{"provider"},
	)

	PairsEvaluatedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_pairs_evaluated_total",
			Help: "Candidate pairs scored",
		},
		[]string{"mode"},
	)

	PairsEmittedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_pairs_emitted_total",
			Help: "Pairs at or above the threshold",
		},
		[]string{"mode"},
	)

	JobsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustintent_jobs_total",
			Help: "Jobs processed by compare mode and status",
		},
		[]string{"compare", "status"},
	)

	JobLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustintent_job_latency_ms",
			Help:    "Job processing latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"compare"},
	)
)

type MetricsConfig struct {
	EnableLatency bool
	EnablePairs   bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnablePairs:   true,
	}
}

var (
	Config   = DefaultMetricsConfig()
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	initOnce.Do(func() {
		Config = cfg
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Registry() *prometheus.Registry {
	return registry
}
