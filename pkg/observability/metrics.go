package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Process result label values.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics bundles the toolkit's collectors on a private registry, so
// embedding applications never collide with the default registry.
type Metrics struct {
	registry *prometheus.Registry

	Sequences *prometheus.CounterVec
	Symbols   *prometheus.CounterVec
	Compiles  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Sequences: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automat",
			Name:      "sequences_processed_total",
			Help:      "Sequences processed, by machine and outcome.",
		}, []string{"machine", "result"}),
		Symbols: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automat",
			Name:      "symbols_consumed_total",
			Help:      "Input symbols consumed, by machine.",
		}, []string{"machine"}),
		Compiles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automat",
			Name:      "definition_compiles_total",
			Help:      "Definition compilations, by outcome (ok or error).",
		}, []string{"result"}),
	}
}

// ObserveProcess records the outcome of one Process call.
func (m *Metrics) ObserveProcess(machine string, symbols int, accepted bool, err error) {
	result := ResultRejected
	switch {
	case err != nil:
		result = ResultError
	case accepted:
		result = ResultAccepted
	}
	m.Sequences.WithLabelValues(machine, result).Inc()
	m.Symbols.WithLabelValues(machine).Add(float64(symbols))
}

// ObserveCompile records the outcome of one definition compilation.
func (m *Metrics) ObserveCompile(err error) {
	if err != nil {
		m.Compiles.WithLabelValues(ResultError).Inc()
		return
	}
	m.Compiles.WithLabelValues("ok").Inc()
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
