package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name:      "refresh_total",
		Namespace: IrrigoDashNamespace,
		Help:      "The total number of dashboard rebuilds since the application started.",
	})

	SourceReadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name:        "source_read_failures_total",
		Namespace:   IrrigoDashNamespace,
		ConstLabels: prometheus.Labels{"source": "csv"},
		Help:        "The total number of failed telemetry file reads since the application started.",
	})

	SourceReadLatencySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:        "source_read_latency_seconds",
		Namespace:   IrrigoDashNamespace,
		ConstLabels: prometheus.Labels{"source": "csv"},
		Buckets:     prometheus.DefBuckets,
		Help:        "The latency of telemetry file reads in seconds.",
	})

	TelemetryRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "telemetry_rows",
		Namespace:   IrrigoDashNamespace,
		ConstLabels: prometheus.Labels{"source": "csv"},
		Help:        "The number of rows in the most recent telemetry read.",
	})
)
