package httpapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"careersite-engine/internal/auth"
	"careersite-engine/internal/store"
)

const (
	cookieAuthToken = "auth_token"
	cookieUserID    = "user_id"
)

type AuthHandler struct {
	DB           store.Querier
	Tokens       *auth.Tokens
	Limiter      *auth.LoginLimiter
	CookieSecure bool
	Log          zerolog.Logger
}

type signupRequest struct {
	CompanyName string `json:"company_name"`
	Slug        string `json:"slug"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is returned on both signup and login.
type sessionResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	UserEmail   string `json:"user_email"`
	CompanyID   string `json:"company_id"`
	CompanySlug string `json:"company_slug"`
	CompanyName string `json:"company_name"`
}

// Signup creates a user plus their company and starts a session.
//
// The email/slug pre-checks are fast-path hints only: under concurrent
// signups the unique indexes decide, and the insert's conflict error maps
// to the same 400.
func (h AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !h.Limiter.Allow(clientIP(r)) {
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later")
		return
	}

	var req signupRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CompanyName == "" || req.Slug == "" || req.Email == "" || req.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "all fields are required")
		return
	}

	if taken, err := store.EmailTaken(r.Context(), h.DB, req.Email); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	} else if taken {
		WriteError(w, r, http.StatusBadRequest, "conflict", "email already registered")
		return
	}
	if taken, err := store.SlugTaken(r.Context(), h.DB, req.Slug); err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	} else if taken {
		WriteError(w, r, http.StatusBadRequest, "conflict", "company slug already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.Error().Err(err).Msg("password hash failed")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.Email, hash)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}
	userID, _ := user["id"].(string)

	company, err := store.CreateCompany(r.Context(), h.DB, store.NewCompany{
		UserID: userID,
		Name:   req.CompanyName,
		Slug:   req.Slug,
	})
	if err != nil {
		writeStoreError(w, r, h.Log, err, "")
		return
	}

	token, err := h.Tokens.Issue(userID, req.Email, time.Now())
	if err != nil {
		h.Log.Error().Err(err).Msg("token issue failed")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.setSessionCookies(w, token, userID)
	h.Log.Info().Str("email", req.Email).Str("slug", req.Slug).Msg("signup")
	WriteJSON(w, http.StatusCreated, sessionResponse{
		Token:       token,
		UserID:      userID,
		UserEmail:   req.Email,
		CompanyID:   asString(company["id"]),
		CompanySlug: asString(company["slug"]),
		CompanyName: asString(company["name"]),
	})
}

// Login verifies credentials and starts a session. Credential failures are
// indistinguishable (401 either way); a user with no company is a 404.
func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.Limiter.Allow(clientIP(r)) {
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later")
		return
	}

	var req loginRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}

	user, err := store.GetUserByEmail(r.Context(), h.DB, req.Email)
	if err != nil || !auth.CheckPassword(asString(user["password_hash"]), req.Password) {
		if err != nil && !isNotFound(err) {
			writeStoreError(w, r, h.Log, err, "")
			return
		}
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}
	userID := asString(user["id"])

	company, err := store.FirstCompanyForUser(r.Context(), h.DB, userID)
	if err != nil {
		writeStoreError(w, r, h.Log, err, "no company found for this user")
		return
	}

	token, err := h.Tokens.Issue(userID, req.Email, time.Now())
	if err != nil {
		h.Log.Error().Err(err).Msg("token issue failed")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.setSessionCookies(w, token, userID)
	h.Log.Info().Str("email", req.Email).Msg("login")
	WriteJSON(w, http.StatusOK, sessionResponse{
		Token:       token,
		UserID:      userID,
		UserEmail:   req.Email,
		CompanyID:   asString(company["id"]),
		CompanySlug: asString(company["slug"]),
		CompanyName: asString(company["name"]),
	})
}

// Logout ends the session by expiring both cookies.
func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookies(w)
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Me returns the verified session identity, for the dashboard.
func (h AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(cookieAuthToken)
	if err != nil || c.Value == "" {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "not signed in")
		return
	}
	claims, err := h.Tokens.Verify(c.Value)
	if err != nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "session expired or invalid")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"user_id": claims.Subject,
		"email":   claims.Email,
	})
}

func (h AuthHandler) setSessionCookies(w http.ResponseWriter, token, userID string) {
	maxAge := int(auth.SessionTTL.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     cookieAuthToken,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     cookieUserID,
		Value:    userID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h AuthHandler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{cookieAuthToken, cookieUserID} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
