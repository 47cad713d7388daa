package api

import (
	"encoding/json"
	"net/http"

	"github.com/mineworks/grindflow/pkg/kpi"
	"github.com/mineworks/grindflow/pkg/validation"
)

// handleLoadGoals returns the goal overrides for a project + flowsheet
// version scope.
func (s *Server) handleLoadGoals(w http.ResponseWriter, r *http.Request) {
	scope := kpi.Scope{
		ProjectID:          r.URL.Query().Get("projectId"),
		FlowsheetVersionID: r.URL.Query().Get("flowsheetVersionId"),
	}
	if !scope.Valid() {
		writeError(w, http.StatusBadRequest, "projectId and flowsheetVersionId are required")
		return
	}

	goals, err := s.goalStore.Load(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, s.sanitizeError(err, "load goals"))
		return
	}
	writeJSON(w, http.StatusOK, GoalsResponse{Scope: scope, Goals: goals})
}

// handleSaveGoals validates and persists goal overrides. An invalid range
// goal rejects the whole save, leaving the stored map unchanged.
func (s *Server) handleSaveGoals(w http.ResponseWriter, r *http.Request) {
	var req validation.SaveGoalsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	goals := make(map[string]kpi.Goal, len(req.Goals))
	for key, raw := range req.Goals {
		if err := validation.ValidateMetricKey(key); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		data, err := json.Marshal(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "malformed goal for "+key)
			return
		}
		var g kpi.Goal
		if err := json.Unmarshal(data, &g); err != nil {
			writeError(w, http.StatusBadRequest, "malformed goal for "+key)
			return
		}
		if err := kpi.ValidateRangeGoal(g); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		goals[key] = g
	}

	scope := kpi.Scope{ProjectID: req.ProjectID, FlowsheetVersionID: req.FlowsheetVersionID}
	if err := s.goalStore.Save(r.Context(), scope, goals); err != nil {
		writeError(w, http.StatusInternalServerError, s.sanitizeError(err, "save goals"))
		return
	}
	writeJSON(w, http.StatusOK, GoalsResponse{Scope: scope, Goals: goals})
}
