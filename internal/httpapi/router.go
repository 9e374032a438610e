package httpapi

import "net/http"

// NewMux wires every route. Method dispatch and path wildcards come from
// the ServeMux patterns; a wrong method on a registered path yields the
// stock 405.
func NewMux(d Deps) *http.ServeMux {
	authH := AuthHandler{DB: d.DB, Tokens: d.Tokens, Limiter: d.LoginLimiter, CookieSecure: d.CookieSecure, Log: d.Log}
	companies := CompaniesHandler{DB: d.DB, Hub: d.Hub, Log: d.Log}
	jobs := JobsHandler{DB: d.DB, Hub: d.Hub, Log: d.Log}
	sections := SectionsHandler{DB: d.DB, Hub: d.Hub, Log: d.Log, Reorder: d.Reorder}
	public := PublicHandler{DB: d.DB, Log: d.Log}
	eventsH := EventsHandler{Hub: d.Hub}
	health := HealthHandler{DB: d.DB}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /events", eventsH.ServeSSE)

	mux.HandleFunc("POST /api/auth/signup", authH.Signup)
	mux.HandleFunc("POST /api/auth/login", authH.Login)
	mux.HandleFunc("POST /api/auth/logout", authH.Logout)
	mux.HandleFunc("GET /api/auth/me", authH.Me)

	mux.HandleFunc("GET /api/companies", companies.List)
	mux.HandleFunc("POST /api/companies", companies.Create)
	mux.HandleFunc("GET /api/companies/by-slug/{slug}", companies.GetBySlug)
	mux.HandleFunc("GET /api/companies/{id}", companies.Get)
	mux.HandleFunc("PUT /api/companies/{id}", companies.Update)
	mux.HandleFunc("DELETE /api/companies/{id}", companies.Delete)

	mux.HandleFunc("GET /api/jobs", jobs.List)
	mux.HandleFunc("POST /api/jobs", jobs.Create)
	mux.HandleFunc("PUT /api/jobs/{id}", jobs.Update)
	mux.HandleFunc("DELETE /api/jobs/{id}", jobs.Delete)

	mux.HandleFunc("GET /api/page-sections", sections.List)
	mux.HandleFunc("POST /api/page-sections", sections.Create)
	mux.HandleFunc("POST /api/page-sections/reorder", sections.ReorderBatch)
	mux.HandleFunc("PUT /api/page-sections/{id}", sections.Update)
	mux.HandleFunc("DELETE /api/page-sections/{id}", sections.Delete)

	mux.HandleFunc("GET /{slug}/careers", public.CareersPage)

	mux.HandleFunc("GET /login", public.LoginPage)
	mux.HandleFunc("GET /signup", public.SignupPage)
	mux.HandleFunc("GET /dashboard", public.Dashboard)
	mux.HandleFunc("GET /", public.Landing)

	return mux
}
