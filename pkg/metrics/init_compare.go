package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCompareMetrics() {
	r.ComparisonsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "grindflow_comparisons_total",
			Help: "Total number of scenario comparisons computed",
		},
	)

	r.ComparisonRowCount = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grindflow_comparison_rows",
			Help:    "Number of rows per comparison",
			Buckets: []float64{5, 10, 20, 50, 100},
		},
	)

	r.UnknownKPIKeysTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "grindflow_unknown_kpi_keys_total",
			Help: "Raw KPI keys seen in run payloads but missing from the goal registry",
		},
		[]string{"key"},
	)

	r.ResampleDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grindflow_psd_resample_duration_seconds",
			Help:    "Duration of PSD union resampling",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1},
		},
	)
}
