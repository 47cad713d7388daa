package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/mineworks/grindflow/pkg/psd"
)

// handleResample projects the submitted curves onto their shared size axis.
// Degenerate curves degrade to missing series; mixed units are rejected.
func (s *Server) handleResample(w http.ResponseWriter, r *http.Request) {
	var req ResampleRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	curves := make([]*psd.Curve, 0, len(req.Curves))
	for _, cp := range req.Curves {
		curve, err := psd.NewCurve(cp.Sizes, cp.CumPassing, psd.Unit(cp.Unit))
		if err != nil {
			if errors.Is(err, psd.ErrDegenerateCurve) {
				// Keep index alignment; resampling skips it.
				curves = append(curves, &psd.Curve{Unit: psd.Unit(cp.Unit)})
				continue
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		curves = append(curves, curve)
	}

	start := time.Now()
	result, err := psd.ResampleOntoUnion(curves)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.RecordResample(time.Since(start))

	writeJSON(w, http.StatusOK, ResampleResponse{Result: result})
}

// handlePercentile returns one interpolated percentile of one curve.
func (s *Server) handlePercentile(w http.ResponseWriter, r *http.Request) {
	var req PercentileRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Percentile < 0 || req.Percentile > 100 {
		writeError(w, http.StatusBadRequest, "percentile must be in [0,100]")
		return
	}

	curve, err := psd.NewCurve(req.Curve.Sizes, req.Curve.CumPassing, psd.Unit(req.Curve.Unit))
	if err != nil {
		if errors.Is(err, psd.ErrDegenerateCurve) {
			// A curve too short to interpolate is a missing result, not an
			// error.
			writeJSON(w, http.StatusOK, PercentileResponse{Found: false})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	size, found := curve.Percentile(req.Percentile)
	writeJSON(w, http.StatusOK, PercentileResponse{Size: size, Found: found})
}
