package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prod_tracker"

// Label values shared by the counters below.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Form metrics
var (
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Total number of batch form submits by mode and result",
		},
		[]string{"mode", "result"},
	)

	WriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "write_duration_seconds",
			Help:      "Latency of the upsert write operation",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"mode"},
	)

	FormsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forms_active",
			Help:      "Number of form sessions currently held",
		},
	)
)

// Cache metrics
var (
	CacheReconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_reconciliations_total",
			Help:      "Total number of department cache merges after a write",
		},
		[]string{"outcome"},
	)

	OptionsLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "options_loads_total",
			Help:      "Total number of option list fetches from the data API",
		},
		[]string{"outcome"},
	)
)
