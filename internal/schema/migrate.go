package schema

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"careersite-engine/internal/store"
)

// QueryFunc executes SQL and returns rows in whatever shape the underlying
// query layer uses. The migrator normalizes the result itself so it keeps
// working against the pgx gateway, test fakes, and any wrapper that returns
// a row slice, a Result envelope, or a single flattened row.
type QueryFunc func(ctx context.Context, sqlText string, args ...any) (any, error)

// Result is the envelope shape some query layers return.
type Result struct {
	Rows []store.Row
}

// RunnerFor adapts the store gateway to a QueryFunc.
func RunnerFor(q store.Querier) QueryFunc {
	return func(ctx context.Context, sqlText string, args ...any) (any, error) {
		return q.Query(ctx, sqlText, args...)
	}
}

// Migrator applies the registry to the database. There is no diffing and no
// rollback: DDL is idempotent, and the first SQL error aborts the run.
type Migrator struct {
	run    QueryFunc
	tables []Table
	log    zerolog.Logger
}

func NewMigrator(run QueryFunc, log zerolog.Logger) *Migrator {
	return &Migrator{run: run, tables: AllTables, log: log}
}

// Sync creates every table, its indexes, and enables RLS, in registry order.
func (m *Migrator) Sync(ctx context.Context) error {
	m.log.Info().Msg("starting schema synchronization")

	for _, t := range m.tables {
		m.log.Info().Str("table", t.Name).Msg("creating table")
		if _, err := m.run(ctx, CreateTableSQL(t)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}

		for _, idx := range t.Indexes {
			m.log.Info().Str("index", idx.Name).Msg("creating index")
			if _, err := m.run(ctx, CreateIndexSQL(t.Name, idx)); err != nil {
				return fmt.Errorf("create index %s: %w", idx.Name, err)
			}
		}

		if _, err := m.run(ctx, EnableRLSSQL(t.Name)); err != nil {
			return fmt.Errorf("enable rls on %s: %w", t.Name, err)
		}
	}

	m.log.Info().Msg("schema synchronization completed")
	return nil
}

// DropAll drops every table in reverse registry order. Development only.
func (m *Migrator) DropAll(ctx context.Context) error {
	m.log.Warn().Msg("dropping all tables")

	for i := len(m.tables) - 1; i >= 0; i-- {
		name := m.tables[i].Name
		m.log.Info().Str("table", name).Msg("dropping table")
		if _, err := m.run(ctx, DropTableSQL(name)); err != nil {
			return fmt.Errorf("drop table %s: %w", name, err)
		}
	}
	return nil
}

// Reset drops and recreates the whole schema.
func (m *Migrator) Reset(ctx context.Context) error {
	if err := m.DropAll(ctx); err != nil {
		return err
	}
	return m.Sync(ctx)
}

// TableExists checks information_schema for a table in the public schema.
func (m *Migrator) TableExists(ctx context.Context, name string) (bool, error) {
	res, err := m.run(ctx,
		`SELECT EXISTS (
		   SELECT FROM information_schema.tables
		   WHERE table_schema = 'public' AND table_name = $1
		 );`, name)
	if err != nil {
		return false, err
	}

	rows := rowsOf(res)
	if len(rows) == 0 {
		return false, nil
	}
	b, _ := rows[0]["exists"].(bool)
	return b, nil
}

const versionTable = "schema_migrations"

// Version returns the highest applied schema version, creating the
// bookkeeping table lazily. An empty table reports version 0.
func (m *Migrator) Version(ctx context.Context) (int, error) {
	exists, err := m.TableExists(ctx, versionTable)
	if err != nil {
		return 0, err
	}
	if !exists {
		_, err := m.run(ctx,
			`CREATE TABLE IF NOT EXISTS schema_migrations (
			   version INT PRIMARY KEY,
			   applied_at TIMESTAMP DEFAULT NOW()
			 );`)
		if err != nil {
			return 0, fmt.Errorf("create %s: %w", versionTable, err)
		}
		return 0, nil
	}

	res, err := m.run(ctx, `SELECT MAX(version) AS version FROM schema_migrations;`)
	if err != nil {
		return 0, err
	}
	rows := rowsOf(res)
	if len(rows) == 0 {
		return 0, nil
	}
	return toInt(rows[0]["version"]), nil
}

// Record marks a version as applied. Re-recording is a no-op.
func (m *Migrator) Record(ctx context.Context, version int) error {
	_, err := m.run(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1) ON CONFLICT (version) DO NOTHING;`,
		version)
	return err
}

// rowsOf normalizes the three result shapes query layers are known to
// return: a bare row slice, a Result envelope, or a single flattened row.
func rowsOf(v any) []store.Row {
	switch r := v.(type) {
	case nil:
		return nil
	case []store.Row:
		return r
	case Result:
		return r.Rows
	case *Result:
		if r == nil {
			return nil
		}
		return r.Rows
	case store.Row:
		return []store.Row{r}
	default:
		return nil
	}
}

// toInt coerces the numeric types the driver may hand back; MAX() over an
// empty table yields nil, which reads as 0.
func toInt(v any) int {
	switch n := v.(type) {
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
