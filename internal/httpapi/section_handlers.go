package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"careersite-engine/internal/events"
	"careersite-engine/internal/store"
)

type SectionsHandler struct {
	DB  store.Querier
	Hub *events.Hub
	Log zerolog.Logger

	// Reorder runs the transactional batch; injected from Deps.
	Reorder func(ctx context.Context, companyID string, ids []string) error
}

type createSectionRequest struct {
	CompanyID   string  `json:"company_id"`
	SectionType string  `json:"section_type"`
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	OrderIndex  int     `json:"order_index"`
	IsVisible   *bool   `json:"is_visible"`
}

type reorderRequest struct {
	CompanyID  string   `json:"company_id"`
	SectionIDs []string `json:"section_ids"`
}

// List returns a company's sections ordered by order_index ascending.
func (h SectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "company_id is required")
		return
	}
	rows, err := store.ListSections(r.Context(), h.DB, companyID)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (h SectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CompanyID == "" || req.SectionType == "" || req.Title == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "company_id, section_type, and title are required")
		return
	}

	row, err := store.CreateSection(r.Context(), h.DB, store.NewSection{
		CompanyID:   req.CompanyID,
		SectionType: req.SectionType,
		Title:       req.Title,
		Content:     req.Content,
		OrderIndex:  req.OrderIndex,
		IsVisible:   req.IsVisible,
	})
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.SectionCreated, 1, map[string]any{"id": row["id"]}))
	WriteJSON(w, http.StatusCreated, row)
}

func (h SectionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	var patch map[string]any
	if !readJSON(w, r, &patch) {
		return
	}

	row, err := store.UpdateSection(r.Context(), h.DB, id, patch)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "page section not found")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.SectionUpdated, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, row)
}

// Delete is idempotent: deleting an absent section still reports ok.
func (h SectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	if err := store.DeleteSection(r.Context(), h.DB, id); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.SectionDeleted, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

// ReorderBatch applies a full new ordering in one transaction. The drag
// editor sends the final section_ids order; position becomes order_index.
func (h SectionsHandler) ReorderBatch(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CompanyID == "" || len(req.SectionIDs) == 0 {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "company_id and section_ids are required")
		return
	}
	if _, err := uuid.Parse(req.CompanyID); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "invalid company_id")
		return
	}
	for _, id := range req.SectionIDs {
		if _, err := uuid.Parse(id); err != nil {
			WriteError(w, r, http.StatusBadRequest, "validation_error", "invalid section id")
			return
		}
	}

	if err := h.Reorder(r.Context(), req.CompanyID, req.SectionIDs); err != nil {
		writeStoreError(w, r, h.Log, err, "section not found for this company")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.SectionsMoved, 1, map[string]any{
		"company_id": req.CompanyID,
		"count":      len(req.SectionIDs),
	}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
