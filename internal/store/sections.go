package store

import (
	"context"
	"fmt"
)

// page_sections has no updated_at column, so updates do not touch one.
var sectionUpdatable = []string{
	"title",
	"content",
	"order_index",
	"is_visible",
}

// NewSection carries the fields accepted when adding a content section.
type NewSection struct {
	CompanyID   string
	SectionType string
	Title       string
	Content     *string
	OrderIndex  int
	IsVisible   *bool
}

// ListSections returns all of a company's sections in display order.
func ListSections(ctx context.Context, q Querier, companyID string) ([]Row, error) {
	return q.Query(ctx, `SELECT * FROM page_sections WHERE company_id = $1 ORDER BY order_index ASC`, companyID)
}

// ListVisibleSections returns only the sections that render on the public
// page, in display order.
func ListVisibleSections(ctx context.Context, q Querier, companyID string) ([]Row, error) {
	return q.Query(ctx,
		`SELECT * FROM page_sections WHERE company_id = $1 AND is_visible = true ORDER BY order_index ASC`,
		companyID)
}

// CreateSection inserts a section and returns the created row. Content
// defaults to empty, visibility to true.
func CreateSection(ctx context.Context, q Querier, s NewSection) (Row, error) {
	content := ""
	if s.Content != nil {
		content = *s.Content
	}
	visible := true
	if s.IsVisible != nil {
		visible = *s.IsVisible
	}

	rows, err := q.Query(ctx,
		`INSERT INTO page_sections (company_id, section_type, title, content, order_index, is_visible)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		s.CompanyID, s.SectionType, s.Title, content, s.OrderIndex, visible)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// UpdateSection applies an allow-listed partial update and returns the
// updated row.
func UpdateSection(ctx context.Context, q Querier, id string, patch map[string]any) (Row, error) {
	sqlText, args, err := buildUpdate("page_sections", patch, sectionUpdatable, false, id)
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

// DeleteSection removes a section. Idempotent.
func DeleteSection(ctx context.Context, q Querier, id string) error {
	_, err := q.Exec(ctx, `DELETE FROM page_sections WHERE id = $1`, id)
	return err
}

// ReorderSections rewrites order_index for a company's sections in a single
// transaction: position in ids becomes the new index. A crash or a bad id
// leaves the previous ordering fully intact.
func (d *DB) ReorderSections(ctx context.Context, companyID string, ids []string) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, id := range ids {
		tag, err := tx.Exec(ctx,
			`UPDATE page_sections SET order_index = $1 WHERE id = $2 AND company_id = $3`,
			i, id, companyID)
		if err != nil {
			return fmt.Errorf("reorder section %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("reorder section %s: %w", id, ErrNotFound)
		}
	}

	return tx.Commit(ctx)
}
