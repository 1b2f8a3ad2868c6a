package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ayoisaiah/deepwork/internal/apperr"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// errorStatus maps an error kind to the HTTP status reported for it.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidTransition),
		errors.Is(err, apperr.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeErr reports err with the status its kind maps to. Unclassified
// errors are not echoed to the client.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.Any("error", err),
		)
		writeError(w, status, "internal server error")

		return
	}

	writeError(w, status, err.Error())
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
