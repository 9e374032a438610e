package store

import "context"

// GetUserByEmail returns id, email, and password_hash for one user.
func GetUserByEmail(ctx context.Context, q Querier, email string) (Row, error) {
	rows, err := q.Query(ctx, `SELECT id, email, password_hash FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// EmailTaken reports whether a user with this email already exists. This is
// a fast-path hint; the unique index on users.email is the enforcement.
func EmailTaken(ctx context.Context, q Querier, email string) (bool, error) {
	rows, err := q.Query(ctx, `SELECT id FROM users WHERE email = $1`, email)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// CreateUser inserts a user and returns the created row.
func CreateUser(ctx context.Context, q Querier, email, passwordHash string) (Row, error) {
	rows, err := q.Query(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, email, created_at`,
		email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rows[0], nil
}
