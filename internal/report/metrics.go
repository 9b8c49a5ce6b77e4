package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// metricOccurrences tracks classified occurrences per category and severity
	metricOccurrences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errsift_occurrences_total",
			Help: "Total number of classified error occurrences",
		},
		[]string{"category", "severity"},
	)

	// metricFatal tracks fatal verdicts
	metricFatal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "errsift_fatal_total",
			Help: "Total number of occurrences with a fatal verdict",
		},
	)

	// metricSinkFailures tracks delivery failures swallowed by the handler
	metricSinkFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "errsift_sink_failures_total",
			Help: "Total number of reporter sink failures",
		},
	)

	// metricSinkSkipped tracks deliveries skipped because the sink was not ready
	metricSinkSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "errsift_sink_skipped_total",
			Help: "Total number of deliveries skipped while the sink was not ready",
		},
	)

	// metricContextDropped tracks caller context entries dropped by the cap
	metricContextDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "errsift_context_dropped_total",
			Help: "Total number of caller context entries dropped by the per-record cap",
		},
	)
)
