package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	queries         *prometheus.CounterVec
	queryDuration   prometheus.Histogram
	intents         *prometheus.CounterVec
	capabilityCalls *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_queries_total",
				Help: "Total number of answered queries by response type",
			},
			[]string{"response_type"},
		),
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "travel_query_duration_seconds",
				Help:    "End-to-end duration of query handling in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
			},
		),
		intents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_intent_total",
				Help: "Total number of classified queries by intent",
			},
			[]string{"intent"},
		),
		capabilityCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_capability_calls_total",
				Help: "Total number of capability provider calls",
			},
			[]string{"capability"},
		),
	}
}

func (m *Metrics) ObserveQuery(responseType string, d time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(responseType).Inc()
	m.queryDuration.Observe(d.Seconds())
}

func (m *Metrics) IncIntent(intent string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(intent).Inc()
}

func (m *Metrics) IncCapabilityCall(capability string) {
	if m == nil {
		return
	}
	m.capabilityCalls.WithLabelValues(capability).Inc()
}
