package store

import (
	"errors"
	"testing"
)

func TestFilterAllowedKeepsListOrder(t *testing.T) {
	patch := map[string]any{
		"title":      "Engineer",
		"location":   "Remote",
		"department": "Eng",
		"company_id": "sneaky",
	}
	allowed := []string{"title", "department", "location"}

	cols, vals := filterAllowed(patch, allowed)

	wantCols := []string{"title", "department", "location"}
	if len(cols) != len(wantCols) {
		t.Fatalf("cols = %v, want %v", cols, wantCols)
	}
	for i := range wantCols {
		if cols[i] != wantCols[i] {
			t.Fatalf("cols = %v, want %v", cols, wantCols)
		}
	}
	if vals[0] != "Engineer" || vals[1] != "Eng" || vals[2] != "Remote" {
		t.Fatalf("vals = %v out of order", vals)
	}
}

func TestBuildUpdateNumbering(t *testing.T) {
	patch := map[string]any{"name": "Acme", "is_published": true}
	sqlText, args, err := buildUpdate("companies", patch, []string{"name", "is_published"}, true, "abc-123")
	if err != nil {
		t.Fatalf("buildUpdate() error: %v", err)
	}

	want := "UPDATE companies SET name = $1, is_published = $2, updated_at = NOW() WHERE id = $3 RETURNING *"
	if sqlText != want {
		t.Fatalf("buildUpdate() = %q, want %q", sqlText, want)
	}
	if len(args) != 3 || args[2] != "abc-123" {
		t.Fatalf("args = %v, want id last", args)
	}
}

func TestBuildUpdateNoUpdatedAtColumn(t *testing.T) {
	patch := map[string]any{"order_index": 2}
	sqlText, _, err := buildUpdate("page_sections", patch, sectionUpdatable, false, "id-1")
	if err != nil {
		t.Fatalf("buildUpdate() error: %v", err)
	}
	want := "UPDATE page_sections SET order_index = $1 WHERE id = $2 RETURNING *"
	if sqlText != want {
		t.Fatalf("buildUpdate() = %q, want %q", sqlText, want)
	}
}

func TestBuildUpdateRejectsEmptyPatch(t *testing.T) {
	_, _, err := buildUpdate("jobs", map[string]any{}, jobUpdatable, true, "id-1")
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("err = %v, want ErrNoFields", err)
	}
}

func TestBuildUpdateRejectsOnlyDisallowedFields(t *testing.T) {
	patch := map[string]any{"slug": "new-slug", "company_id": "other"}
	_, _, err := buildUpdate("jobs", patch, jobUpdatable, true, "id-1")
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("err = %v, want ErrNoFields", err)
	}
}
