package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphValidationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "grindflow_graph_validations_total",
			Help: "Total number of flowsheet validations",
		},
		[]string{"status"},
	)

	r.GraphViolationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "grindflow_graph_violations_total",
			Help: "Structural violations found during flowsheet validation",
		},
		[]string{"type", "severity"},
	)

	r.SubmissionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "grindflow_submissions_total",
			Help: "Flowsheet submissions to the simulation service",
		},
		[]string{"status"},
	)
}
