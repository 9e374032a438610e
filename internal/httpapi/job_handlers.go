package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"careersite-engine/internal/events"
	"careersite-engine/internal/store"
)

type JobsHandler struct {
	DB  store.Querier
	Hub *events.Hub
	Log zerolog.Logger
}

type createJobRequest struct {
	CompanyID       string  `json:"company_id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	Department      *string `json:"department"`
	Location        *string `json:"location"`
	JobType         *string `json:"job_type"`
	EmploymentType  *string `json:"employment_type"`
	ExperienceLevel *string `json:"experience_level"`
	SalaryMin       *int    `json:"salary_min"`
	SalaryMax       *int    `json:"salary_max"`
	SalaryCurrency  string  `json:"salary_currency"`
}

// List returns a company's jobs ordered by posted_at descending.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "company_id is required")
		return
	}
	rows, err := store.ListJobs(r.Context(), h.DB, companyID)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CompanyID == "" || req.Title == "" || req.Slug == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "company_id, title, and slug are required")
		return
	}

	row, err := store.CreateJob(r.Context(), h.DB, store.NewJob{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		Department:      req.Department,
		Location:        req.Location,
		JobType:         req.JobType,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
	})
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobCreated, 1, map[string]any{"id": row["id"]}))
	WriteJSON(w, http.StatusCreated, row)
}

func (h JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	var patch map[string]any
	if !readJSON(w, r, &patch) {
		return
	}

	row, err := store.UpdateJob(r.Context(), h.DB, id, patch)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "job not found")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobUpdated, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, row)
}

// Delete is idempotent: deleting an absent job still reports ok.
func (h JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == "" {
		return
	}
	if err := store.DeleteJob(r.Context(), h.DB, id); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobDeleted, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
