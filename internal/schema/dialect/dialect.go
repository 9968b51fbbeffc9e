// Package dialect renders the schema catalog to DDL for a concrete engine.
package dialect

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/fortuna/lahman/internal/schema"
)

// Dialect captures the differences between engines that matter to the
// schema: type names, quoting, key generation and naming scope.
type Dialect interface {
	// Name is the canonical dialect name: mysql, postgres or sqlite.
	Name() string
	Quote(ident string) string
	// ColumnDef renders a full column definition, including NOT NULL and
	// key generation for surrogate keys.
	ColumnDef(col *schema.Column) string
	// ScopedIndexNames reports whether index and unique constraint names
	// share one namespace across all tables.
	ScopedIndexNames() bool
	// NonUniqueForeignKeys reports whether the engine accepts foreign keys
	// whose target columns are not a primary key or unique constraint.
	NonUniqueForeignKeys() bool
	// InlineIndexes reports whether secondary indexes are declared inside
	// CREATE TABLE rather than as separate statements.
	InlineIndexes() bool
	// TableOptions is appended after the closing parenthesis of CREATE TABLE.
	TableOptions(t *schema.Table) string
	Placeholder() sq.PlaceholderFormat
	// Returning reports whether INSERT ... RETURNING is used to read back
	// generated keys instead of LastInsertId.
	Returning() bool
	// AdvanceSequence returns a statement that moves the key generator of
	// column past every stored value, or nil when the engine tracks
	// explicitly inserted keys itself.
	AdvanceSequence(table, column string) sq.Sqlizer
	GooseDialect() goose.Dialect
}

// ByName resolves a dialect from a dialect or driver name.
func ByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql":
		return NewMySQL(), nil
	case "postgres", "postgresql", "pgx":
		return Postgres{}, nil
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
}

// Names lists the supported dialects.
func Names() []string {
	return []string{"mysql", "postgres", "sqlite"}
}

func quoteWith(q, ident string) string {
	return q + strings.ReplaceAll(ident, q, q+q) + q
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
