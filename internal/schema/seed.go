package schema

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"careersite-engine/internal/store"
)

const (
	demoEmail    = "demo@company.com"
	demoPassword = "demo123"
	demoSlug     = "demo-company"
)

// Seeder writes demo data through the query gateway.
type Seeder struct {
	q   store.Querier
	log zerolog.Logger
}

func NewSeeder(q store.Querier, log zerolog.Logger) *Seeder {
	return &Seeder{q: q, log: log}
}

// SeedDemoData creates the demo user, a published demo company, three page
// sections, and three jobs. Skips everything when the demo user exists.
func (s *Seeder) SeedDemoData(ctx context.Context) error {
	existing, err := s.q.Query(ctx, `SELECT id FROM users WHERE email = $1`, demoEmail)
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info().Msg("demo data already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	userRows, err := s.q.Query(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		demoEmail, string(hash))
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	userID := userRows[0]["id"]
	s.log.Info().Any("user_id", userID).Msg("demo user created")

	companyRows, err := s.q.Query(ctx,
		`INSERT INTO companies (user_id, name, slug, description, primary_color, secondary_color, accent_color, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		userID,
		"Demo Tech Company",
		demoSlug,
		"We are a cutting-edge technology company building the future of work.",
		"#1a1a1a", "#ffffff", "#3b82f6", true)
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	companyID := companyRows[0]["id"]
	s.log.Info().Any("company_id", companyID).Msg("demo company created")

	_, err = s.q.Query(ctx,
		`INSERT INTO page_sections (company_id, section_type, title, content, order_index, is_visible)
		 VALUES
		 ($1, 'about', 'About Us', 'We are passionate about building innovative solutions that make a difference. Our team of talented individuals works together to create products that people love.', 0, true),
		 ($1, 'culture', 'Our Culture', 'We believe in a culture of collaboration, innovation, and continuous learning. We support remote work, flexible schedules, and a healthy work-life balance.', 1, true),
		 ($1, 'benefits', 'Benefits & Perks', 'Competitive salary, health insurance, unlimited PTO, learning budget, remote work options, and much more!', 2, true)`,
		companyID)
	if err != nil {
		return fmt.Errorf("seed sections: %w", err)
	}

	_, err = s.q.Query(ctx,
		`INSERT INTO jobs (company_id, title, slug, description, department, location, job_type, employment_type, experience_level, salary_min, salary_max, salary_currency)
		 VALUES
		 ($1, 'Senior Software Engineer', 'senior-software-engineer',
		  'We are looking for an experienced software engineer to join our team and help build amazing products.',
		  'Engineering', 'Remote', 'Full-time', 'Permanent', 'Senior', 120000, 180000, 'USD'),
		 ($1, 'Product Manager', 'product-manager',
		  'Join our product team to define and build the next generation of our platform.',
		  'Product', 'San Francisco, CA', 'Full-time', 'Permanent', 'Mid-Senior', 110000, 160000, 'USD'),
		 ($1, 'UX Designer', 'ux-designer',
		  'Help us create beautiful and intuitive user experiences for our customers.',
		  'Design', 'Remote', 'Full-time', 'Permanent', 'Mid', 90000, 130000, 'USD')`,
		companyID)
	if err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	s.log.Info().Str("email", demoEmail).Str("slug", demoSlug).Msg("demo data seeded")
	return nil
}

// ClearData deletes all rows, children first, keeping the schema.
func (s *Seeder) ClearData(ctx context.Context) error {
	s.log.Warn().Msg("clearing all data")
	for _, table := range []string{"jobs", "page_sections", "companies", "users"} {
		if _, err := s.q.Query(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Reseed clears all data and seeds again.
func (s *Seeder) Reseed(ctx context.Context) error {
	if err := s.ClearData(ctx); err != nil {
		return err
	}
	return s.SeedDemoData(ctx)
}
