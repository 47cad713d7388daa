package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// RecordValidation records one flowsheet validation and its violations
func (r *Registry) RecordValidation(valid bool, violations map[string]map[string]int) {
	status := "valid"
	if !valid {
		status = "invalid"
	}
	r.GraphValidationsTotal.WithLabelValues(status).Inc()
	for vtype, bySeverity := range violations {
		for severity, count := range bySeverity {
			r.GraphViolationsTotal.WithLabelValues(vtype, severity).Add(float64(count))
		}
	}
}

// RecordSubmission records one submission outcome
func (r *Registry) RecordSubmission(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	r.SubmissionsTotal.WithLabelValues(status).Inc()
}

// RecordComparison records one comparison computation
func (r *Registry) RecordComparison(rowCount int) {
	r.ComparisonsTotal.Inc()
	r.ComparisonRowCount.Observe(float64(rowCount))
}

// RecordUnknownKPIKey counts a raw key the goal registry could not resolve
func (r *Registry) RecordUnknownKPIKey(key string) {
	r.UnknownKPIKeysTotal.WithLabelValues(key).Inc()
}

// RecordResample records the duration of one union resampling
func (r *Registry) RecordResample(duration time.Duration) {
	r.ResampleDuration.Observe(duration.Seconds())
}
