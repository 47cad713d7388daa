package api

import (
	"time"

	"github.com/mineworks/grindflow/pkg/compare"
	"github.com/mineworks/grindflow/pkg/flowsheet"
	"github.com/mineworks/grindflow/pkg/kpi"
	"github.com/mineworks/grindflow/pkg/psd"
)

// API Request/Response Types

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// CreateFlowsheetResponse returns a new editing session
type CreateFlowsheetResponse struct {
	ID string `json:"id"`
}

// FlowsheetResponse is the full editable graph state
type FlowsheetResponse struct {
	ID    string            `json:"id"`
	Nodes []*flowsheet.Node `json:"nodes"`
	Edges []*flowsheet.Edge `json:"edges"`
	Dirty bool              `json:"dirty"`
}

// ValidateResponse wraps a structural validation result
type ValidateResponse struct {
	Result *flowsheet.ValidationResult `json:"result"`
}

// SubmitResponse reports the outcome of a simulation submission
type SubmitResponse struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	RunID    string   `json:"runId,omitempty"`
}

// GoalsResponse returns the stored overrides for a scope
type GoalsResponse struct {
	Scope kpi.Scope           `json:"scope"`
	Goals map[string]kpi.Goal `json:"goals"`
}

// CompareResponse is the ordered comparison table
type CompareResponse struct {
	Rows  []compare.Row `json:"rows"`
	Count int           `json:"count"`
}

// ResampleRequest carries curves to project onto a shared size axis
type ResampleRequest struct {
	Curves []curvePayload `json:"curves"`
}

// curvePayload is the wire shape of one PSD curve
type curvePayload struct {
	Sizes      []float64 `json:"sizes"`
	CumPassing []float64 `json:"cumPassing"`
	Unit       string    `json:"unit"`
}

// ResampleResponse returns the shared axis and per-curve series
type ResampleResponse struct {
	Result *psd.ResampleResult `json:"result"`
}

// PercentileRequest asks for one percentile of one curve
type PercentileRequest struct {
	Curve      curvePayload `json:"curve"`
	Percentile float64      `json:"percentile"`
}

// PercentileResponse returns the interpolated size, or found=false for a
// degenerate curve
type PercentileResponse struct {
	Size  float64 `json:"size"`
	Found bool    `json:"found"`
}

// CatalogResponse lists equipment types
type CatalogResponse struct {
	Equipment []equipmentPayload `json:"equipment"`
	Count     int                `json:"count"`
}

// equipmentPayload mirrors catalog.EquipmentType for API responses
type equipmentPayload struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	Category   string `json:"category"`
	Ports      any    `json:"ports"`
	Parameters any    `json:"parameters"`
}
