package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's Prometheus instruments.
type Metrics struct {
	registry         *prometheus.Registry
	simulationsTotal *prometheus.CounterVec
	conversionsTotal prometheus.Counter
	conversionStates prometheus.Histogram
}

// NewMetrics creates and registers the instruments on a private registry, so
// multiple servers (e.g. in tests) never collide on the global one.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		simulationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_simulations_total",
				Help: "Words simulated, labeled by verdict.",
			},
			[]string{"verdict"},
		),
		conversionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "weft_conversions_total",
				Help: "NFA to DFA conversions performed.",
			},
		),
		conversionStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weft_conversion_states",
				Help:    "Number of states in converted DFAs.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}

	registry.MustRegister(m.simulationsTotal, m.conversionsTotal, m.conversionStates)
	return m
}
