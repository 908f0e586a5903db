package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// upstreamRequestsTotal counts calls to the weather provider, partitioned by endpoint and outcome.
var upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weathernow_upstream_requests_total",
	Help: "Total number of weather provider requests by endpoint and outcome.",
}, []string{"endpoint", "outcome"})

// loadsTotal counts coordinator loads, partitioned by locator kind (city, location) and outcome.
var loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weathernow_loads_total",
	Help: "Total number of weather loads by locator kind and outcome.",
}, []string{"kind", "outcome"})

// loadDuration observes how long a load takes from trigger to settled state.
var loadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "weathernow_load_duration_seconds",
	Help:    "Duration of weather loads by locator kind.",
	Buckets: prometheus.DefBuckets,
}, []string{"kind"})

func ObserveUpstream(endpoint, outcome string) {
	upstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func ObserveLoad(kind, outcome string, seconds float64) {
	loadsTotal.WithLabelValues(kind, outcome).Inc()
	loadDuration.WithLabelValues(kind).Observe(seconds)
}
