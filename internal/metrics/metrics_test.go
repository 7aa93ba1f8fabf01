package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveQuery("hotel", 2*time.Second)
	m.ObserveQuery("error", time.Second)
	m.IncIntent("plan")
	m.IncIntent("plan")
	m.IncCapabilityCall("search_hotels")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("hotel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.intents.WithLabelValues("plan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.capabilityCalls.WithLabelValues("search_hotels")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.queryDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuery("general", time.Millisecond)
		m.IncIntent("flight")
		m.IncCapabilityCall("search_flights")
	})
}
