package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/google/uuid"

	"careersite-engine/internal/store"
)

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// readJSON decodes a request body, reporting the 400 itself. Returns false
// when decoding failed and the response has been written.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return false
	}
	return true
}

// pathID extracts and validates a UUID path parameter. Returns "" after
// writing a 400 when the value is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request, name string) string {
	id := r.PathValue(name)
	if _, err := uuid.Parse(id); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "invalid id")
		return ""
	}
	return id
}

// clientIP is the rate-limit key: the connection's remote host.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
