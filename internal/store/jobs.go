package store

import "context"

// jobUpdatable excludes the slug: (company_id, slug) identifies the posting
// in public URLs and does not change after creation.
var jobUpdatable = []string{
	"title",
	"description",
	"department",
	"location",
	"job_type",
	"employment_type",
	"experience_level",
	"salary_min",
	"salary_max",
	"salary_currency",
}

const defaultSalaryCurrency = "USD"

// NewJob carries the fields accepted when posting a job.
type NewJob struct {
	CompanyID       string
	Title           string
	Slug            string
	Description     *string
	Department      *string
	Location        *string
	JobType         *string
	EmploymentType  *string
	ExperienceLevel *string
	SalaryMin       *int
	SalaryMax       *int
	SalaryCurrency  string
}

// ListJobs returns a company's jobs, most recently posted first.
func ListJobs(ctx context.Context, q Querier, companyID string) ([]Row, error) {
	return q.Query(ctx, `SELECT * FROM jobs WHERE company_id = $1 ORDER BY posted_at DESC`, companyID)
}

// CreateJob inserts a job posting and returns the created row.
func CreateJob(ctx context.Context, q Querier, j NewJob) (Row, error) {
	if j.SalaryCurrency == "" {
		j.SalaryCurrency = defaultSalaryCurrency
	}

	rows, err := q.Query(ctx,
		`INSERT INTO jobs (company_id, title, slug, description, department, location, job_type, employment_type, experience_level, salary_min, salary_max, salary_currency)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING *`,
		j.CompanyID, j.Title, j.Slug, j.Description, j.Department, j.Location,
		j.JobType, j.EmploymentType, j.ExperienceLevel, j.SalaryMin, j.SalaryMax, j.SalaryCurrency)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rows[0], nil
}

// UpdateJob applies an allow-listed partial update and returns the updated row.
func UpdateJob(ctx context.Context, q Querier, id string, patch map[string]any) (Row, error) {
	sqlText, args, err := buildUpdate("jobs", patch, jobUpdatable, true, id)
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

// DeleteJob removes a job posting. Idempotent: deleting an absent id is not
// an error.
func DeleteJob(ctx context.Context, q Querier, id string) error {
	_, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
