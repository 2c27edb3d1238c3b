package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mailforge-ai/mailforge"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req mailforge.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		s.logger.Error("generation request failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
		writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusForError maps pipeline error categories onto HTTP statuses. Fetch
// failures are the caller's problem (bad or unreachable product URL); model
// and parse failures are upstream problems.
func statusForError(err error) int {
	switch {
	case errors.Is(err, mailforge.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, mailforge.ErrFetchFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mailforge.ErrExtractionFailed),
		errors.Is(err, mailforge.ErrGenerationFailed),
		errors.Is(err, mailforge.ErrNoEmails):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
