package api

import (
	"errors"
	"net/http"

	"github.com/mineworks/grindflow/pkg/compare"
	"github.com/mineworks/grindflow/pkg/kpi"
	"github.com/mineworks/grindflow/pkg/simrun"
	"github.com/mineworks/grindflow/pkg/validation"
)

// handleCompare fetches the latest successful runs of the baseline and the
// scenario, applies the scope's goal overrides, and returns the scored rows.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req validation.CompareRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	baseRun, err := s.sim.LatestSuccessfulRun(r.Context(), req.BaselineScenarioID)
	if err != nil {
		writeError(w, runFetchStatus(err), s.sanitizeError(err, "fetch baseline run"))
		return
	}
	scenRun, err := s.sim.LatestSuccessfulRun(r.Context(), req.ScenarioID)
	if err != nil {
		writeError(w, runFetchStatus(err), s.sanitizeError(err, "fetch scenario run"))
		return
	}

	scope := kpi.Scope{ProjectID: req.ProjectID, FlowsheetVersionID: req.FlowsheetVersionID}
	overrides, err := s.goalStore.Load(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, s.sanitizeError(err, "load goals"))
		return
	}

	rows := compare.Compare(s.kpiReg, overrides, baseRun.KPI, scenRun.KPI, compareOptions(req))
	s.metrics.RecordComparison(len(rows))
	writeJSON(w, http.StatusOK, CompareResponse{Rows: rows, Count: len(rows)})
}

func compareOptions(req validation.CompareRequest) compare.Options {
	opts := compare.Options{OnlyChanged: req.OnlyChanged}
	if req.Sort == "percent_delta" {
		opts.Sort = compare.SortPercentDelta
	}
	switch req.Filter {
	case "only_better":
		opts.Filter = compare.FilterOnlyBetter
	case "only_worse":
		opts.Filter = compare.FilterOnlyWorse
	}
	return opts
}

func runFetchStatus(err error) int {
	if errors.Is(err, simrun.ErrNoSuccessfulRun) || errors.Is(err, simrun.ErrRunNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
