package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mineworks/grindflow/pkg/flowsheet"
	"github.com/mineworks/grindflow/pkg/logging"
	"github.com/mineworks/grindflow/pkg/validation"
)

// handleCreateFlowsheet opens a new editing session.
func (s *Server) handleCreateFlowsheet(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	s.putSession(id, &session{
		graph: flowsheet.NewGraph(s.catalog,
			flowsheet.WithPhasePolicy(flowsheet.PhaseWarn),
			flowsheet.WithLogger(s.logger)),
	})
	writeJSON(w, http.StatusCreated, CreateFlowsheetResponse{ID: id})
}

// handleGetFlowsheet returns the current graph state.
func (s *Server) handleGetFlowsheet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}
	writeJSON(w, http.StatusOK, FlowsheetResponse{
		ID:    r.PathValue("id"),
		Nodes: sess.graph.Nodes(),
		Edges: sess.graph.Edges(),
		Dirty: sess.graph.Dirty(),
	})
}

// handleAddNode adds an equipment node from the catalog.
func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}

	var req validation.AddNodeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	node, err := sess.graph.AddNode(req.EquipmentType, flowsheet.Position{X: req.X, Y: req.Y})
	if err != nil {
		writeError(w, graphErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, node)
}

// handleRemoveNode removes a node and its incident edges; idempotent.
func (s *Server) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}
	sess.graph.RemoveNode(r.PathValue("nodeId"))
	w.WriteHeader(http.StatusNoContent)
}

// handleConnect creates a stream edge between two ports.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}

	var req validation.ConnectRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	edge, err := sess.graph.Connect(req.SourceNodeID, req.SourcePortID, req.TargetNodeID, req.TargetPortID)
	if err != nil {
		writeError(w, graphErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, edge)
}

// handleSetParameter edits one node parameter.
func (s *Server) handleSetParameter(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}

	var req validation.SetParameterRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if err := sess.graph.SetParameter(req.NodeID, req.Name, req.Value); err != nil {
		writeError(w, graphErrorStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleValidate runs structural validation and records the outcome.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}

	result := sess.graph.Validate()
	s.metrics.RecordValidation(result.Valid, violationCounts(result))
	writeJSON(w, http.StatusOK, ValidateResponse{Result: result})
}

// handleSubmit validates the graph and hands it to the simulation service.
// Structural errors never reach the service. A response that lost the race
// against a newer submission is discarded without touching the dirty flag.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.getSession(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flowsheet not found")
		return
	}

	result := sess.graph.Validate()
	if !result.Valid {
		s.metrics.RecordSubmission(false)
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Result: result})
		return
	}

	token := sess.tracker.Begin()
	payload := sess.graph.SubmissionPayload()

	submitted, err := s.sim.Submit(r.Context(), payload)
	if err != nil {
		s.metrics.RecordSubmission(false)
		writeError(w, http.StatusBadGateway, s.sanitizeError(err, "submit flowsheet"))
		return
	}

	if !sess.tracker.Accept(token) {
		s.logger.Warn("discarding stale simulation response",
			logging.String("flowsheet", r.PathValue("id")))
		writeError(w, http.StatusConflict, "superseded by a newer submission")
		return
	}

	s.metrics.RecordSubmission(submitted.Success)
	if !submitted.Success {
		writeJSON(w, http.StatusOK, SubmitResponse{Success: false, Error: submitted.FirstError()})
		return
	}

	sess.graph.MarkClean()
	writeJSON(w, http.StatusOK, SubmitResponse{Success: true, Warnings: submitted.Warnings})
}

// graphErrorStatus maps graph model errors to HTTP status codes.
func graphErrorStatus(err error) int {
	switch {
	case errors.Is(err, flowsheet.ErrNodeNotFound),
		errors.Is(err, flowsheet.ErrDanglingReference):
		return http.StatusNotFound
	case errors.Is(err, flowsheet.ErrUnknownEquipmentType),
		errors.Is(err, flowsheet.ErrUnknownParameter),
		errors.Is(err, flowsheet.ErrInvalidDirection),
		errors.Is(err, flowsheet.ErrPhaseMismatch),
		errors.Is(err, flowsheet.ErrOutOfDomain),
		errors.Is(err, flowsheet.ErrNotAFeedNode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// violationCounts shapes a validation result for the metrics recorder.
func violationCounts(result *flowsheet.ValidationResult) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, v := range result.Violations {
		t := v.Type.String()
		if counts[t] == nil {
			counts[t] = make(map[string]int)
		}
		counts[t][v.Severity.String()]++
	}
	return counts
}
