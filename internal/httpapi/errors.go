package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"careersite-engine/internal/store"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeStoreError maps store sentinels to the error taxonomy. Anything
// unclassified becomes a generic 500; the driver detail goes to the log
// only, never to the client.
func writeStoreError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error, notFoundMsg string) {
	if notFoundMsg == "" {
		notFoundMsg = "not found"
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", notFoundMsg)
	case errors.Is(err, store.ErrConflict):
		WriteError(w, r, http.StatusBadRequest, "conflict", "already exists")
	case errors.Is(err, store.ErrNoFields):
		WriteError(w, r, http.StatusBadRequest, "validation_error", "no valid fields to update")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("store error")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
