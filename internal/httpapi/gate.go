package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"careersite-engine/internal/auth"
)

// Gate redirects browser navigation based on session state. The session is
// the auth_token cookie, verified against its signature and expiry on every
// request, not inferred from cookie presence.
//
// Rules:
//   - API routes, the SSE stream, health, and public careers pages bypass
//     gating entirely.
//   - authenticated users are bounced from /login, /signup, and / to the
//     dashboard.
//   - anonymous users hitting a protected path are sent to /login with the
//     original path preserved as ?redirect=.
type Gate struct {
	Tokens *auth.Tokens
}

func (g Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if bypassesGate(path) {
			next.ServeHTTP(w, r)
			return
		}

		authed := g.sessionValid(r)

		if authed && (isAuthPage(path) || path == "/") {
			http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
			return
		}

		if !authed && isProtected(path) {
			to := "/login?redirect=" + url.QueryEscape(path)
			http.Redirect(w, r, to, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g Gate) sessionValid(r *http.Request) bool {
	c, err := r.Cookie(cookieAuthToken)
	if err != nil || c.Value == "" {
		return false
	}
	_, err = g.Tokens.Verify(c.Value)
	return err == nil
}

func bypassesGate(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		path == "/events" ||
		path == "/health" ||
		strings.HasSuffix(path, "/careers")
}

func isAuthPage(path string) bool {
	return path == "/login" || path == "/signup"
}

func isProtected(path string) bool {
	return strings.HasPrefix(path, "/dashboard") ||
		strings.Contains(path, "/edit") ||
		strings.Contains(path, "/preview")
}
