// Package observability exposes analysis metrics in the prometheus format.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records analyzer timings. It implements lint.Observer.
type Metrics struct {
	registry *prometheus.Registry

	RuleDuration     *prometheus.HistogramVec
	RuleDiagnostics  *prometheus.CounterVec
	UnitDuration     prometheus.Histogram
	UnitsAnalyzed    prometheus.Counter
	UnitsFailed      prometheus.Counter
	DiagnosticsTotal prometheus.Counter
}

// NewMetrics creates metrics on a private registry so that repeated runs in
// one process do not collide.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		RuleDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guidelint_rule_seconds",
			Help:    "Time spent running one rule over one unit.",
			Buckets: prometheus.DefBuckets,
		}, []string{"rule"}),
		RuleDiagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guidelint_rule_diagnostics_total",
			Help: "Diagnostics reported per rule.",
		}, []string{"rule"}),
		UnitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "guidelint_unit_seconds",
			Help:    "Time spent analyzing one unit.",
			Buckets: prometheus.DefBuckets,
		}),
		UnitsAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "guidelint_units_analyzed_total",
			Help: "Units analyzed to completion.",
		}),
		UnitsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "guidelint_units_failed_total",
			Help: "Units whose analysis was cancelled.",
		}),
		DiagnosticsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "guidelint_diagnostics_total",
			Help: "Diagnostics reported across all units.",
		}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRule records one rule run.
func (m *Metrics) ObserveRule(ruleID string, elapsed time.Duration, diagnostics int) {
	m.RuleDuration.WithLabelValues(ruleID).Observe(elapsed.Seconds())
	m.RuleDiagnostics.WithLabelValues(ruleID).Add(float64(diagnostics))
}

// ObserveUnit records one Analyze call.
func (m *Metrics) ObserveUnit(elapsed time.Duration, diagnostics int, err error) {
	m.UnitDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.UnitsFailed.Inc()
		return
	}
	m.UnitsAnalyzed.Inc()
	m.DiagnosticsTotal.Add(float64(diagnostics))
}

// WriteTextfile writes the current values to path in the text exposition
// format, suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
