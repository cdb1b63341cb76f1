package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// overlay request pipeline.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: status
	RequestDuration prometheus.Histogram

	// Archive fetch metrics.
	DocumentsFetched prometheus.Counter
	FetchErrors      prometheus.Counter
	FetchDuration    prometheus.Histogram
	FetchesInFlight  prometheus.Gauge

	// Extraction and rendering metrics.
	RecordsDiscarded prometheus.Counter
	WarningsRendered prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DocumentsFetched,
		m.FetchErrors,
		m.FetchDuration,
		m.FetchesInFlight,
		m.RecordsDiscarded,
		m.WarningsRendered,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "warning_overlay",
			Name:      "requests_total",
			Help:      "Overlay requests served, by HTTP status code.",
		}, []string{"status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "warning_overlay",
			Name:      "request_duration_seconds",
			Help:      "Duration of a complete fetch-extract-render request.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		DocumentsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warning_overlay",
			Name:      "documents_fetched_total",
			Help:      "Total archive documents fetched successfully.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warning_overlay",
			Name:      "fetch_errors_total",
			Help:      "Total archive fetch failures.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "warning_overlay",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a single archive document fetch.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FetchesInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "warning_overlay",
			Name:      "fetches_in_flight",
			Help:      "Archive fetches currently outstanding.",
		}),
		RecordsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warning_overlay",
			Name:      "records_discarded_total",
			Help:      "Report records rejected by the validity filter.",
		}),
		WarningsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warning_overlay",
			Name:      "warnings_rendered_total",
			Help:      "Warnings written into overlay responses.",
		}),
	}
}
