// Package careers renders the public careers page and implements the job
// search/filter predicate it offers.
package careers

import (
	"time"

	"careersite-engine/internal/store"
)

// Company is the themed page owner, shaped for template access.
type Company struct {
	ID              string
	Name            string
	Slug            string
	Description     string
	LogoURL         string
	BannerURL       string
	CultureVideoURL string
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	IsPublished     bool
}

// Job is one open position as shown on the public page.
type Job struct {
	ID              string
	Title           string
	Slug            string
	Description     string
	Department      string
	Location        string
	JobType         string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       int
	SalaryMax       int
	SalaryCurrency  string
	PostedAt        time.Time
}

// Section is one free-text content block.
type Section struct {
	ID          string
	SectionType string
	Title       string
	Content     string
	OrderIndex  int
	IsVisible   bool
}

func CompanyFromRow(r store.Row) Company {
	return Company{
		ID:              rowString(r, "id"),
		Name:            rowString(r, "name"),
		Slug:            rowString(r, "slug"),
		Description:     rowString(r, "description"),
		LogoURL:         rowString(r, "logo_url"),
		BannerURL:       rowString(r, "banner_url"),
		CultureVideoURL: rowString(r, "culture_video_url"),
		PrimaryColor:    rowString(r, "primary_color"),
		SecondaryColor:  rowString(r, "secondary_color"),
		AccentColor:     rowString(r, "accent_color"),
		IsPublished:     rowBool(r, "is_published"),
	}
}

func JobFromRow(r store.Row) Job {
	return Job{
		ID:              rowString(r, "id"),
		Title:           rowString(r, "title"),
		Slug:            rowString(r, "slug"),
		Description:     rowString(r, "description"),
		Department:      rowString(r, "department"),
		Location:        rowString(r, "location"),
		JobType:         rowString(r, "job_type"),
		EmploymentType:  rowString(r, "employment_type"),
		ExperienceLevel: rowString(r, "experience_level"),
		SalaryMin:       rowInt(r, "salary_min"),
		SalaryMax:       rowInt(r, "salary_max"),
		SalaryCurrency:  rowString(r, "salary_currency"),
		PostedAt:        rowTime(r, "posted_at"),
	}
}

func SectionFromRow(r store.Row) Section {
	return Section{
		ID:          rowString(r, "id"),
		SectionType: rowString(r, "section_type"),
		Title:       rowString(r, "title"),
		Content:     rowString(r, "content"),
		OrderIndex:  rowInt(r, "order_index"),
		IsVisible:   rowBool(r, "is_visible"),
	}
}

func JobsFromRows(rows []store.Row) []Job {
	out := make([]Job, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobFromRow(r))
	}
	return out
}

func SectionsFromRows(rows []store.Row) []Section {
	out := make([]Section, 0, len(rows))
	for _, r := range rows {
		out = append(out, SectionFromRow(r))
	}
	return out
}

// Row value accessors. NULL columns read as zero values.

func rowString(r store.Row, key string) string {
	s, _ := r[key].(string)
	return s
}

func rowBool(r store.Row, key string) bool {
	b, _ := r[key].(bool)
	return b
}

func rowInt(r store.Row, key string) int {
	switch n := r[key].(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func rowTime(r store.Row, key string) time.Time {
	t, _ := r[key].(time.Time)
	return t
}
