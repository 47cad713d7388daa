package api

import (
	"encoding/json"
	"net/http"

	"github.com/mineworks/grindflow/pkg/logging"
	"github.com/mineworks/grindflow/pkg/validation"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeAndValidate decodes the request body into req and validates it
// against its struct tags. It writes the error response itself and reports
// whether the handler should continue.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := validation.ValidateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// sanitizeError logs the full error and returns a user-safe message.
// Internal details stay out of responses.
func (s *Server) sanitizeError(err error, operation string) string {
	s.logger.Error("handler error", logging.Operation(operation), logging.Error(err))
	return operation + " failed"
}
