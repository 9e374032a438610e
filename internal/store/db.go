// Package store is the persistence layer. All SQL in the repository goes
// through DB.Query / DB.Exec with positional $n parameters; nothing else
// touches the driver.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Row is one result row keyed by column name, as returned by the gateway.
type Row = map[string]any

var (
	// ErrNotFound is returned when a lookup or update matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-constraint violations
	// (duplicate email or slug).
	ErrConflict = errors.New("conflict")
	// ErrNoFields is returned when an update payload contains no
	// allow-listed fields.
	ErrNoFields = errors.New("no valid fields to update")
)

// Querier is the query gateway seen by resource functions and handlers.
// *DB implements it; tests substitute fakes.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// DB wraps a pgx pool with logging. One DB is created at startup and
// shared for the process lifetime.
type DB struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// Open creates and verifies a pgx connection pool.
func Open(ctx context.Context, databaseURL string, log zerolog.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &DB{pool: pool, log: log}, nil
}

func (d *DB) Close() {
	if d != nil && d.pool != nil {
		d.pool.Close()
	}
}

// Query executes sqlText with positional parameters and returns all rows.
func (d *DB) Query(ctx context.Context, sqlText string, args ...any) ([]Row, error) {
	d.log.Debug().Str("sql", sqlText).Int("args", len(args)).Msg("query")

	rows, err := d.pool.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("query scan: %w", err)
	}
	for _, r := range out {
		for k, v := range r {
			r[k] = normalizeValue(v)
		}
	}
	return out, nil
}

// Exec executes sqlText and returns the number of rows affected.
func (d *DB) Exec(ctx context.Context, sqlText string, args ...any) (int64, error) {
	d.log.Debug().Str("sql", sqlText).Int("args", len(args)).Msg("exec")

	tag, err := d.pool.Exec(ctx, sqlText, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	return tag.RowsAffected(), nil
}

// normalizeValue makes driver-native values JSON-friendly. pgx hands UUID
// columns back as raw 16-byte arrays.
func normalizeValue(v any) any {
	if b, ok := v.([16]byte); ok {
		return uuid.UUID(b).String()
	}
	return v
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
