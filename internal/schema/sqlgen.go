package schema

import (
	"fmt"
	"strings"
)

// All DDL is idempotent (IF NOT EXISTS) so a repeated sync is a no-op.

// CreateTableSQL renders the CREATE TABLE statement for one table.
// Table-level UNIQUE constraints are emitted for non-primary-key columns
// flagged unique.
func CreateTableSQL(t Table) string {
	parts := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		parts = append(parts, ColumnDefinition(c))
	}
	for _, c := range t.Columns {
		if c.Unique && !c.PrimaryKey {
			parts = append(parts, fmt.Sprintf("UNIQUE(%s)", c.Name))
		}
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);", t.Name, strings.Join(parts, ",\n  "))
}

// ColumnDefinition renders a single column. Clause order: name, type,
// PRIMARY KEY, DEFAULT, NOT NULL (suppressed for primary keys), REFERENCES.
func ColumnDefinition(c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.Type)

	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(c.Default)
	}
	if !c.Nullable && !c.PrimaryKey {
		b.WriteString(" NOT NULL")
	}
	if c.References != nil {
		fmt.Fprintf(&b, " REFERENCES %s(%s)", c.References.Table, c.References.Column)
		if c.References.OnDelete != "" {
			b.WriteString(" ON DELETE ")
			b.WriteString(c.References.OnDelete)
		}
	}
	return b.String()
}

// CreateIndexSQL renders one CREATE INDEX statement.
func CreateIndexSQL(tableName string, idx Index) string {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s(%s);",
		unique, idx.Name, tableName, strings.Join(idx.Columns, ", "))
}

// DropTableSQL renders the destructive inverse of CreateTableSQL.
func DropTableSQL(tableName string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE;", tableName)
}

// EnableRLSSQL turns on row-level security for a table. Policies are out of
// scope; enabling is still done so adding them later needs no ALTER.
func EnableRLSSQL(tableName string) string {
	return fmt.Sprintf("ALTER TABLE %s ENABLE ROW LEVEL SECURITY;", tableName)
}

// GenerateAll renders the full schema script for all tables, in registry
// order, with RLS enablement at the end.
func GenerateAll(tables []Table) string {
	var b strings.Builder
	b.WriteString("-- Generated Schema SQL\n")
	b.WriteString("-- Auto-generated from the schema registry; do not edit by hand.\n\n")

	for _, t := range tables {
		fmt.Fprintf(&b, "-- %s TABLE\n", strings.ToUpper(t.Name))
		b.WriteString(CreateTableSQL(t))
		b.WriteString("\n\n")

		if len(t.Indexes) > 0 {
			for _, idx := range t.Indexes {
				b.WriteString(CreateIndexSQL(t.Name, idx))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("-- ENABLE ROW LEVEL SECURITY\n")
	for _, t := range tables {
		b.WriteString(EnableRLSSQL(t.Name))
		b.WriteString("\n")
	}
	return b.String()
}
