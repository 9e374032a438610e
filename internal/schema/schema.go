// Package schema holds the declarative table registry and turns it into DDL.
// The registry is the single source of truth for the database layout; the
// dbtool applies it.
package schema

// RegistryVersion is recorded in schema_migrations after a successful sync.
// Bump it when the registry changes shape.
const RegistryVersion = 1

// ForeignKey references a parent table column.
type ForeignKey struct {
	Table    string
	Column   string
	OnDelete string // CASCADE, SET NULL, RESTRICT; empty for none
}

type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
	Unique     bool
	Default    string
	References *ForeignKey
}

type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

type Table struct {
	Name    string
	Columns []Column
	Indexes []Index
}

func idColumn() Column {
	return Column{Name: "id", Type: "UUID", PrimaryKey: true, Default: "gen_random_uuid()"}
}

func timestampColumn(name string) Column {
	return Column{Name: name, Type: "TIMESTAMP", Nullable: true, Default: "NOW()"}
}

var UsersTable = Table{
	Name: "users",
	Columns: []Column{
		idColumn(),
		{Name: "email", Type: "TEXT", Unique: true},
		{Name: "password_hash", Type: "TEXT"},
		timestampColumn("created_at"),
		timestampColumn("updated_at"),
	},
	Indexes: []Index{
		{Name: "idx_users_email", Columns: []string{"email"}, Unique: true},
	},
}

var CompaniesTable = Table{
	Name: "companies",
	Columns: []Column{
		idColumn(),
		{Name: "user_id", Type: "UUID", References: &ForeignKey{Table: "users", Column: "id", OnDelete: "CASCADE"}},
		{Name: "slug", Type: "TEXT", Unique: true},
		{Name: "name", Type: "TEXT"},
		{Name: "description", Type: "TEXT", Nullable: true},
		{Name: "logo_url", Type: "TEXT", Nullable: true},
		{Name: "banner_url", Type: "TEXT", Nullable: true},
		{Name: "culture_video_url", Type: "TEXT", Nullable: true},
		{Name: "primary_color", Type: "TEXT", Nullable: true, Default: "'#000000'"},
		{Name: "secondary_color", Type: "TEXT", Nullable: true, Default: "'#ffffff'"},
		{Name: "accent_color", Type: "TEXT", Nullable: true, Default: "'#3b82f6'"},
		{Name: "is_published", Type: "BOOLEAN", Nullable: true, Default: "false"},
		timestampColumn("created_at"),
		timestampColumn("updated_at"),
	},
	Indexes: []Index{
		{Name: "idx_companies_slug", Columns: []string{"slug"}, Unique: true},
		{Name: "idx_companies_user_id", Columns: []string{"user_id"}},
	},
}

var PageSectionsTable = Table{
	Name: "page_sections",
	Columns: []Column{
		idColumn(),
		{Name: "company_id", Type: "UUID", References: &ForeignKey{Table: "companies", Column: "id", OnDelete: "CASCADE"}},
		{Name: "section_type", Type: "TEXT"},
		{Name: "title", Type: "TEXT"},
		{Name: "content", Type: "TEXT", Nullable: true},
		{Name: "order_index", Type: "INT", Nullable: true, Default: "0"},
		{Name: "is_visible", Type: "BOOLEAN", Nullable: true, Default: "true"},
		timestampColumn("created_at"),
	},
	Indexes: []Index{
		{Name: "idx_page_sections_company_id", Columns: []string{"company_id"}},
	},
}

var JobsTable = Table{
	Name: "jobs",
	Columns: []Column{
		idColumn(),
		{Name: "company_id", Type: "UUID", References: &ForeignKey{Table: "companies", Column: "id", OnDelete: "CASCADE"}},
		{Name: "title", Type: "TEXT"},
		{Name: "slug", Type: "TEXT"},
		{Name: "description", Type: "TEXT", Nullable: true},
		{Name: "department", Type: "TEXT", Nullable: true},
		{Name: "location", Type: "TEXT", Nullable: true},
		{Name: "job_type", Type: "TEXT", Nullable: true},
		{Name: "employment_type", Type: "TEXT", Nullable: true},
		{Name: "experience_level", Type: "TEXT", Nullable: true},
		{Name: "salary_min", Type: "INT", Nullable: true},
		{Name: "salary_max", Type: "INT", Nullable: true},
		{Name: "salary_currency", Type: "TEXT", Nullable: true, Default: "'USD'"},
		timestampColumn("posted_at"),
		timestampColumn("updated_at"),
	},
	Indexes: []Index{
		{Name: "idx_jobs_company_id", Columns: []string{"company_id"}},
		{Name: "idx_jobs_company_slug", Columns: []string{"company_id", "slug"}, Unique: true},
	},
}

// AllTables lists every table in dependency order: parents before children.
// The generator does not validate references, so this ordering is the
// contract the migrator relies on.
var AllTables = []Table{
	UsersTable,
	CompaniesTable,
	PageSectionsTable,
	JobsTable,
}
