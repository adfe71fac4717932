// Package metrics provides observability for the command pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks command outcomes and interpreter latency.
type Metrics struct {
	CommandsTotal     *prometheus.CounterVec
	InterpretFailures prometheus.Counter
	InterpretDuration prometheus.Histogram
}

// New creates a Metrics instance registered against the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid collisions.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CommandsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadvane_commands_total",
			Help: "Total commands processed, by action and outcome status",
		}, []string{"action", "status"}),
		InterpretFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "leadvane_interpret_failures_total",
			Help: "Total interpreter outputs that could not be parsed",
		}),
		InterpretDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadvane_interpret_duration_seconds",
			Help:    "Duration of natural-language interpretation calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// CommandProcessed records one processed command.
func (m *Metrics) CommandProcessed(action, status string) {
	m.CommandsTotal.WithLabelValues(action, status).Inc()
}

// InterpretFailed records an uninterpretable command.
func (m *Metrics) InterpretFailed() {
	m.InterpretFailures.Inc()
}

// ObserveInterpret records the duration of an interpretation call. Call
// with time.Now() captured at the start of the call.
func (m *Metrics) ObserveInterpret(start time.Time) {
	m.InterpretDuration.Observe(time.Since(start).Seconds())
}
