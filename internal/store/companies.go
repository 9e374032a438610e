package store

import "context"

// companyUpdatable is the fixed set of columns a PUT may patch. The slug is
// deliberately absent: it is immutable after creation.
var companyUpdatable = []string{
	"name",
	"description",
	"logo_url",
	"banner_url",
	"culture_video_url",
	"primary_color",
	"secondary_color",
	"accent_color",
	"is_published",
}

const (
	defaultPrimaryColor   = "#000000"
	defaultSecondaryColor = "#ffffff"
	defaultAccentColor    = "#3b82f6"
)

// NewCompany carries the fields accepted at creation. Pointer fields map to
// NULL when nil; empty color strings fall back to the theme defaults.
type NewCompany struct {
	UserID          string
	Name            string
	Slug            string
	Description     *string
	LogoURL         *string
	BannerURL       *string
	CultureVideoURL *string
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
}

// ListCompanies returns all companies owned by a user, newest first.
func ListCompanies(ctx context.Context, q Querier, userID string) ([]Row, error) {
	return q.Query(ctx, `SELECT * FROM companies WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// GetCompany looks up one company by id.
func GetCompany(ctx context.Context, q Querier, id string) (Row, error) {
	rows, err := q.Query(ctx, `SELECT * FROM companies WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// GetCompanyBySlug looks up one company by its unique slug.
func GetCompanyBySlug(ctx context.Context, q Querier, slug string) (Row, error) {
	rows, err := q.Query(ctx, `SELECT * FROM companies WHERE slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// FirstCompanyForUser returns the user's company for login responses.
// Signup creates exactly one, so LIMIT 1 picks it deterministically by age.
func FirstCompanyForUser(ctx context.Context, q Querier, userID string) (Row, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, slug FROM companies WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// SlugTaken reports whether a company slug is already in use. Fast-path
// hint only; idx_companies_slug enforces uniqueness under races.
func SlugTaken(ctx context.Context, q Querier, slug string) (bool, error) {
	rows, err := q.Query(ctx, `SELECT id FROM companies WHERE slug = $1`, slug)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// CreateCompany inserts a company and returns the created row.
func CreateCompany(ctx context.Context, q Querier, c NewCompany) (Row, error) {
	if c.PrimaryColor == "" {
		c.PrimaryColor = defaultPrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = defaultSecondaryColor
	}
	if c.AccentColor == "" {
		c.AccentColor = defaultAccentColor
	}

	rows, err := q.Query(ctx,
		`INSERT INTO companies (user_id, name, slug, description, logo_url, banner_url, culture_video_url, primary_color, secondary_color, accent_color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`,
		c.UserID, c.Name, c.Slug, c.Description, c.LogoURL, c.BannerURL, c.CultureVideoURL,
		c.PrimaryColor, c.SecondaryColor, c.AccentColor)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rows[0], nil
}

// UpdateCompany applies an allow-listed partial update and returns the
// updated row. Unknown keys in patch are dropped silently.
func UpdateCompany(ctx context.Context, q Querier, id string, patch map[string]any) (Row, error) {
	sqlText, args, err := buildUpdate("companies", patch, companyUpdatable, true, id)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// DeleteCompany removes a company; jobs and sections cascade. Idempotent.
func DeleteCompany(ctx context.Context, q Querier, id string) error {
	_, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
