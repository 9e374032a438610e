package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"careersite-engine/internal/events"
	"careersite-engine/internal/store"
)

const (
	testCompanyID = "11111111-1111-4111-8111-111111111111"
	testJobID     = "22222222-2222-4222-8222-222222222222"
)

func newJobsHandler(db *fakeDB) JobsHandler {
	return JobsHandler{DB: db, Hub: events.NewHub(), Log: zerolog.Nop()}
}

func TestJobsListRequiresCompanyID(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)

	newJobsHandler(db).List(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(db.calls) != 0 {
		t.Fatalf("store must not be queried on validation failure")
	}
}

func TestJobsCreateDefaultsCurrency(t *testing.T) {
	db := newFakeDB()
	db.rows["INSERT INTO jobs"] = []store.Row{{"id": testJobID, "title": "Engineer", "salary_currency": "USD"}}

	body := `{"company_id":"` + testCompanyID + `","title":"Engineer","slug":"engineer"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))

	newJobsHandler(db).Create(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	insert := db.calls[len(db.calls)-1]
	last := insert.args[len(insert.args)-1]
	if last != "USD" {
		t.Fatalf("salary_currency arg = %v, want USD", last)
	}
}

func TestJobsCreateRequiredFields(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(`{"title":"Engineer"}`))

	newJobsHandler(db).Create(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var e APIError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	if e.Error.Code != "validation_error" {
		t.Fatalf("code = %q, want validation_error", e.Error.Code)
	}
}

func TestJobsUpdateDisallowedFieldsOnly(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/jobs/"+testJobID,
		strings.NewReader(`{"slug":"new-slug","company_id":"other"}`))
	r.SetPathValue("id", testJobID)

	newJobsHandler(db).Update(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if db.sawSQL("UPDATE jobs") {
		t.Fatalf("no UPDATE may run when every field is disallowed")
	}
}

func TestJobsUpdateMissingRowIs404(t *testing.T) {
	db := newFakeDB()
	db.rows["UPDATE jobs"] = []store.Row{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/jobs/"+testJobID,
		strings.NewReader(`{"title":"Staff Engineer"}`))
	r.SetPathValue("id", testJobID)

	newJobsHandler(db).Update(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestJobsUpdateRejectsMalformedID(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/jobs/not-a-uuid", strings.NewReader(`{"title":"x"}`))
	r.SetPathValue("id", "not-a-uuid")

	newJobsHandler(db).Update(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(db.calls) != 0 {
		t.Fatalf("store must not be touched for a malformed id")
	}
}

func TestJobsDeleteIsIdempotent(t *testing.T) {
	db := newFakeDB()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/jobs/"+testJobID, nil)
	r.SetPathValue("id", testJobID)

	newJobsHandler(db).Delete(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["ok"] != true || resp["id"] != testJobID {
		t.Fatalf("resp = %v, want ok plus echoed id", resp)
	}
}
