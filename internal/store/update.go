package store

import (
	"fmt"
	"strings"
)

// filterAllowed keeps only allow-listed keys from a patch payload, in
// allow-list order so the generated SQL is deterministic. Unknown keys are
// dropped silently.
func filterAllowed(patch map[string]any, allowed []string) (cols []string, vals []any) {
	for _, col := range allowed {
		if v, ok := patch[col]; ok {
			cols = append(cols, col)
			vals = append(vals, v)
		}
	}
	return cols, vals
}

// buildUpdate renders an allow-listed partial UPDATE:
//
//	UPDATE t SET a = $1, b = $2, updated_at = NOW() WHERE id = $3 RETURNING *
//
// Column names come from the fixed allow-list, never from the payload, so
// the dynamic SET clause cannot carry user input into SQL text. Returns
// ErrNoFields when nothing in the patch survives filtering.
func buildUpdate(table string, patch map[string]any, allowed []string, touchUpdatedAt bool, id string) (string, []any, error) {
	cols, vals := filterAllowed(patch, allowed)
	if len(cols) == 0 {
		return "", nil, ErrNoFields
	}

	set := make([]string, len(cols))
	for i, col := range cols {
		set[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	clause := strings.Join(set, ", ")
	if touchUpdatedAt {
		clause += ", updated_at = NOW()"
	}

	sqlText := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *", table, clause, len(cols)+1)
	return sqlText, append(vals, id), nil
}
