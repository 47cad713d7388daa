// Package metrics exposes the dashboard core's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the service exports.
type Registry struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Flowsheet metrics
	GraphValidationsTotal *prometheus.CounterVec
	GraphViolationsTotal  *prometheus.CounterVec
	SubmissionsTotal      *prometheus.CounterVec

	// Comparison metrics
	ComparisonsTotal    prometheus.Counter
	ComparisonRowCount  prometheus.Histogram
	UnknownKPIKeysTotal *prometheus.CounterVec
	ResampleDuration    prometheus.Histogram
}

// NewRegistry creates a metrics registry backed by its own Prometheus
// registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initGraphMetrics()
	r.initCompareMetrics()
	return r
}

// Prometheus returns the underlying registry for the /metrics handler.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}
