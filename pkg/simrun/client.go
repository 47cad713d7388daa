package simrun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mineworks/grindflow/pkg/flowsheet"
	"github.com/mineworks/grindflow/pkg/logging"
)

// Client is an HTTP client for the simulation engine. Timeouts and retry
// policy belong to the caller (via the supplied http.Client and contexts);
// the client itself enforces neither.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(l logging.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client against the engine's base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit hands a flowsheet payload to the engine for a one-off simulation.
// The graph is never mutated by this call.
func (c *Client) Submit(ctx context.Context, payload flowsheet.SubmissionPayload) (*SubmitResult, error) {
	var result SubmitResult
	if err := c.postJSON(ctx, "/api/simulate", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// runAndSaveRequest is the persisted-run submission shape.
type runAndSaveRequest struct {
	FlowsheetVersionID string                  `json:"flowsheetVersionId"`
	ScenarioID         string                  `json:"scenarioId,omitempty"`
	Nodes              []flowsheet.PayloadNode `json:"nodes"`
	Edges              []flowsheet.PayloadEdge `json:"edges"`
}

// RunAndSave submits the payload and persists the run under the flowsheet
// version (and scenario, when given).
func (c *Client) RunAndSave(ctx context.Context, flowsheetVersionID string, payload flowsheet.SubmissionPayload, scenarioID string) (*RunRecord, error) {
	req := runAndSaveRequest{
		FlowsheetVersionID: flowsheetVersionID,
		ScenarioID:         scenarioID,
		Nodes:              payload.Nodes,
		Edges:              payload.Edges,
	}
	var record RunRecord
	if err := c.postJSON(ctx, "/api/runs", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetRun fetches one run with its KPI values and PSD curves.
func (c *Client) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	var record RunRecord
	err := c.getJSON(ctx, "/api/runs/"+url.PathEscape(runID), &record)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	return &record, nil
}

// LatestSuccessfulRun fetches the most recent successful run of a scenario.
func (c *Client) LatestSuccessfulRun(ctx context.Context, scenarioID string) (*RunRecord, error) {
	var record RunRecord
	path := "/api/scenarios/" + url.PathEscape(scenarioID) + "/runs/latest-successful"
	if err := c.getJSON(ctx, path, &record); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("scenario %s: %w", scenarioID, ErrNoSuccessfulRun)
		}
		return nil, err
	}
	return &record, nil
}

// SetBaseline designates a run as the baseline for its flowsheet version.
func (c *Client) SetBaseline(ctx context.Context, runID string) error {
	return c.postJSON(ctx, "/api/runs/"+url.PathEscape(runID)+"/baseline", struct{}{}, nil)
}

// SetScenarioBaseline designates a scenario as the comparison baseline.
func (c *Client) SetScenarioBaseline(ctx context.Context, scenarioID string) error {
	return c.postJSON(ctx, "/api/scenarios/"+url.PathEscape(scenarioID)+"/baseline", struct{}{}, nil)
}

// statusError carries a non-2xx response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("simulation service returned %d: %s", e.code, e.body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	timer := logging.StartTimer(c.logger, "simulation service call",
		logging.String("method", req.Method),
		logging.String("path", req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		timer.EndError(err)
		return fmt.Errorf("simulation service: %w", err)
	}
	defer resp.Body.Close()
	timer.End()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode, body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
