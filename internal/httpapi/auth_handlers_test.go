package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"careersite-engine/internal/auth"
	"careersite-engine/internal/store"
)

const testUserID = "55555555-5555-4555-8555-555555555555"

func newAuthHandler(db *fakeDB) AuthHandler {
	return AuthHandler{
		DB:      db,
		Tokens:  auth.NewTokens("test-secret"),
		Limiter: auth.NewLoginLimiter(600, 100),
		Log:     zerolog.Nop(),
	}
}

func TestSignupHappyPath(t *testing.T) {
	db := newFakeDB()
	db.rows["INSERT INTO users"] = []store.Row{{"id": testUserID, "email": "a@b.com"}}
	db.rows["INSERT INTO companies"] = []store.Row{{"id": testCompanyID, "slug": "acme", "name": "Acme"}}

	body := `{"company_name":"Acme","slug":"acme","email":"a@b.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))

	newAuthHandler(db).Signup(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Token == "" || resp.UserID != testUserID || resp.CompanySlug != "acme" {
		t.Fatalf("resp = %+v", resp)
	}

	cookies := w.Result().Cookies()
	var authCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "auth_token" {
			authCookie = c
		}
	}
	if authCookie == nil {
		t.Fatalf("auth_token cookie not set")
	}
	if !authCookie.HttpOnly {
		t.Fatalf("auth_token cookie must be HttpOnly")
	}
	if authCookie.Value == "a@b.com:hunter22" || strings.Contains(authCookie.Value, "hunter22") {
		t.Fatalf("cookie must not carry credentials")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := newFakeDB()
	db.rows["FROM users WHERE email"] = []store.Row{{"id": testUserID}}

	body := `{"company_name":"Acme","slug":"acme","email":"a@b.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))

	newAuthHandler(db).Signup(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if db.sawSQL("INSERT INTO users") {
		t.Fatalf("no user insert for a duplicate email")
	}
}

func TestSignupRequiresAllFields(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"a@b.com","password":"x"}`))

	newAuthHandler(db).Signup(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	db := newFakeDB()
	db.rows["FROM users WHERE email"] = []store.Row{
		{"id": testUserID, "email": "a@b.com", "password_hash": hash},
	}

	body := `{"email":"a@b.com","password":"battery-staple"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))

	newAuthHandler(db).Login(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginUnknownEmailIsSame401(t *testing.T) {
	db := newFakeDB()

	body := `{"email":"nobody@b.com","password":"whatever"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))

	newAuthHandler(db).Login(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var e APIError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	if e.Error.Message != "invalid email or password" {
		t.Fatalf("message = %q; unknown email and wrong password must read the same", e.Error.Message)
	}
}

func TestLoginWithoutCompanyIs404(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	db := newFakeDB()
	db.rows["FROM users WHERE email"] = []store.Row{
		{"id": testUserID, "email": "a@b.com", "password_hash": hash},
	}

	body := `{"email":"a@b.com","password":"correct-horse"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))

	newAuthHandler(db).Login(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestLoginRateLimited(t *testing.T) {
	h := newAuthHandler(newFakeDB())
	h.Limiter = auth.NewLoginLimiter(1, 2)

	body := `{"email":"a@b.com","password":"x"}`
	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		r.RemoteAddr = "203.0.113.7:1234"
		h.Login(w, r)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third attempt status = %d, want 429", last)
	}
}

func TestMeRoundTrip(t *testing.T) {
	h := newAuthHandler(newFakeDB())

	tok, err := h.Tokens.Issue(testUserID, "a@b.com", time.Now())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})

	h.Me(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["user_id"] != testUserID || resp["email"] != "a@b.com" {
		t.Fatalf("resp = %v", resp)
	}
}

func TestMeWithoutCookieIs401(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	newAuthHandler(newFakeDB()).Me(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogoutExpiresCookies(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)

	newAuthHandler(newFakeDB()).Logout(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	expired := 0
	for _, c := range w.Result().Cookies() {
		if (c.Name == "auth_token" || c.Name == "user_id") && c.MaxAge < 0 {
			expired++
		}
	}
	if expired != 2 {
		t.Fatalf("expired %d session cookies, want 2", expired)
	}
}
