// Package simrun talks to the external simulation engine: submitting
// flowsheet payloads, fetching run results, and designating baselines. The
// engine itself is opaque; this package only moves its payloads.
package simrun

import (
	"errors"

	"github.com/mineworks/grindflow/pkg/psd"
)

// Common sentinel errors
var (
	ErrNoSuccessfulRun = errors.New("no successful run for scenario")
	ErrRunNotFound     = errors.New("run not found")
)

// RunStatus is the lifecycle state of a simulation run.
type RunStatus string

const (
	StatusPending   RunStatus = "pending"
	StatusRunning   RunStatus = "running"
	StatusSucceeded RunStatus = "succeeded"
	StatusFailed    RunStatus = "failed"
)

// SubmitResult is the engine's synchronous response to a submission.
type SubmitResult struct {
	Success   bool                          `json:"success"`
	Errors    []string                      `json:"errors,omitempty"`
	Warnings  []string                      `json:"warnings,omitempty"`
	GlobalKPI map[string]float64            `json:"globalKpi,omitempty"`
	NodeKPI   map[string]map[string]float64 `json:"nodeKpi,omitempty"`
}

// FirstError returns the error string surfaced to the user, empty on
// success.
func (r *SubmitResult) FirstError() string {
	if r.Success || len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// RunRecord is one persisted simulation run with its results.
type RunRecord struct {
	ID                 string                        `json:"id"`
	ScenarioID         string                        `json:"scenarioId,omitempty"`
	FlowsheetVersionID string                        `json:"flowsheetVersionId"`
	Status             RunStatus                     `json:"status"`
	KPI                map[string]float64            `json:"kpi,omitempty"`
	NodeKPI            map[string]map[string]float64 `json:"nodeKpi,omitempty"`
	Curves             map[string]*psd.Curve         `json:"psdCurves,omitempty"`
	CreatedAt          string                        `json:"createdAt,omitempty"`
}
