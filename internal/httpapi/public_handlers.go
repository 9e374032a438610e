package httpapi

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"careersite-engine/internal/careers"
	"careersite-engine/internal/store"
)

type PublicHandler struct {
	DB  store.Querier
	Log zerolog.Logger
}

// CareersPage serves GET /{slug}/careers. A missing or unpublished company
// renders the same 404, so the slug space cannot be probed for drafts.
func (h PublicHandler) CareersPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	companyRow, err := store.GetCompanyBySlug(r.Context(), h.DB, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.Log.Error().Err(err).Str("slug", slug).Msg("load company")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	company := careers.CompanyFromRow(companyRow)
	if !company.IsPublished {
		http.NotFound(w, r)
		return
	}

	var jobRows, sectionRows []store.Row
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		jobRows, err = store.ListJobs(ctx, h.DB, company.ID)
		return err
	})
	g.Go(func() error {
		var err error
		sectionRows, err = store.ListVisibleSections(ctx, h.DB, company.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error().Err(err).Str("slug", slug).Msg("load page data")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	allJobs := careers.JobsFromRows(jobRows)
	filter := careers.Filter{
		Query:    r.URL.Query().Get("q"),
		Location: r.URL.Query().Get("location"),
		JobType:  r.URL.Query().Get("type"),
	}

	data := careers.PageData{
		Company:   company,
		Sections:  careers.SectionsFromRows(sectionRows),
		Jobs:      careers.FilterJobs(allJobs, filter),
		AllJobs:   allJobs,
		Filter:    filter,
		Locations: careers.Locations(allJobs),
		JobTypes:  careers.JobTypes(allJobs),
	}

	// Render to a buffer first so a template failure never produces a
	// half-written 200.
	var buf bytes.Buffer
	if err := careers.RenderPage(&buf, data); err != nil {
		h.Log.Error().Err(err).Str("slug", slug).Msg("render careers page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Shell pages. The editing UI is a separate frontend; these exist so the
// auth gate has real targets to redirect between.

func (h PublicHandler) Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeShell(w, "Careersite", "Build a branded careers page for your company.")
}

func (h PublicHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeShell(w, "Dashboard", "Manage your company profile, sections, and job postings.")
}

func (h PublicHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	writeShell(w, "Log in", "Sign in to manage your careers page.")
}

func (h PublicHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	writeShell(w, "Sign up", "Create an account and claim your company slug.")
}

func writeShell(w http.ResponseWriter, title, blurb string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>` + title + `</title></head>
<body><h1>` + title + `</h1><p>` + blurb + `</p></body></html>
`))
}
