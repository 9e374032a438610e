package httpapi

import (
	"context"
	"errors"
	"strings"
	"sync"

	"careersite-engine/internal/store"
)

// errSQLDetail stands in for a driver error whose text must never reach a
// client.
var errSQLDetail = errors.New(`pq: relation "companies" does not exist`)

// fakeDB scripts Query/Exec responses by SQL substring and records every
// statement so tests can assert what did or did not hit the store. The
// mutex matters: the public page fetches jobs and sections concurrently.
type fakeDB struct {
	mu    sync.Mutex
	calls []fakeCall
	rows  map[string][]store.Row
	errs  map[string]error
}

type fakeCall struct {
	sql  string
	args []any
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		rows: make(map[string][]store.Row),
		errs: make(map[string]error),
	}
}

func (f *fakeDB) Query(ctx context.Context, sqlText string, args ...any) ([]store.Row, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{sql: sqlText, args: args})
	f.mu.Unlock()
	for key, err := range f.errs {
		if strings.Contains(sqlText, key) {
			return nil, err
		}
	}
	for key, rows := range f.rows {
		if strings.Contains(sqlText, key) {
			return rows, nil
		}
	}
	return []store.Row{}, nil
}

func (f *fakeDB) Exec(ctx context.Context, sqlText string, args ...any) (int64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{sql: sqlText, args: args})
	f.mu.Unlock()
	for key, err := range f.errs {
		if strings.Contains(sqlText, key) {
			return 0, err
		}
	}
	return 1, nil
}

func (f *fakeDB) sawSQL(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if strings.Contains(c.sql, substr) {
			return true
		}
	}
	return false
}
