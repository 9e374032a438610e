package httpapi

import (
	"net/http"

	"careersite-engine/internal/store"
)

type HealthHandler struct {
	DB store.Querier
}

// Health reports process liveness and whether the database answers.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if _, err := h.DB.Query(r.Context(), `SELECT 1 AS ok`); err != nil {
		dbOK = false
	}
	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, map[string]any{"ok": dbOK, "db": dbOK})
}
