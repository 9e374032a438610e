package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"careersite-engine/internal/events"
	"careersite-engine/internal/store"
)

type CompaniesHandler struct {
	DB  store.Querier
	Hub *events.Hub
	Log zerolog.Logger
}

type createCompanyRequest struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	LogoURL         *string `json:"logo_url"`
	BannerURL       *string `json:"banner_url"`
	CultureVideoURL *string `json:"culture_video_url"`
	PrimaryColor    string  `json:"primary_color"`
	SecondaryColor  string  `json:"secondary_color"`
	AccentColor     string  `json:"accent_color"`
}

// List returns the companies owned by ?user_id=, newest first.
func (h CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}
	rows, err := store.ListCompanies(r.Context(), h.DB, userID)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (h CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.Name == "" || req.Slug == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "user_id, name, and slug are required")
		return
	}

	// Fast-path hint; the unique index is the real gate.
	if taken, err := store.SlugTaken(r.Context(), h.DB, req.Slug); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	} else if taken {
		WriteError(w, r, http.StatusBadRequest, "conflict", "company slug already taken")
		return
	}

	row, err := store.CreateCompany(r.Context(), h.DB, store.NewCompany{
		UserID:          req.UserID,
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		BannerURL:       req.BannerURL,
		CultureVideoURL: req.CultureVideoURL,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		AccentColor:     req.AccentColor,
	})
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.CompanyCreated, 1, map[string]any{"id": row["id"]}))
	WriteJSON(w, http.StatusCreated, row)
}

func (h CompaniesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	row, err := store.GetCompany(r.Context(), h.DB, id)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "company not found")
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (h CompaniesHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	row, err := store.GetCompanyBySlug(r.Context(), h.DB, slug)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "company not found")
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (h CompaniesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	var patch map[string]any
	if !readJSON(w, r, &patch) {
		return
	}

	row, err := store.UpdateCompany(r.Context(), h.DB, id, patch)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "company not found")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.CompanyUpdated, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, row)
}

// Delete removes a company and, via cascade, its jobs and sections.
// Idempotent: an already-deleted id still reports ok.
func (h CompaniesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	if err := store.DeleteCompany(r.Context(), h.DB, id); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.CompanyDeleted, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
