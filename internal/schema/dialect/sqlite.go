package dialect

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/fortuna/lahman/internal/schema"
)

// SQLite renders for SQLite. A surrogate key declared INTEGER with a
// table-level primary key becomes the rowid alias and is assigned on insert.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Quote(ident string) string { return quoteWith(`"`, ident) }

func (s SQLite) ColumnDef(col *schema.Column) string {
	var b strings.Builder
	b.WriteString(s.Quote(col.Name))
	b.WriteByte(' ')
	switch col.Type {
	case schema.SmallInt:
		b.WriteString("SMALLINT")
	case schema.Integer:
		b.WriteString("INTEGER")
	case schema.Varchar:
		if col.Length > 0 {
			fmt.Fprintf(&b, "VARCHAR(%d)", col.Length)
		} else {
			b.WriteString("VARCHAR")
		}
	case schema.Double:
		b.WriteString("DOUBLE")
	case schema.Float:
		b.WriteString("FLOAT")
	case schema.Date:
		b.WriteString("DATE")
	case schema.Boolean:
		b.WriteString("BOOLEAN")
	}
	if !col.Nullable {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

func (SQLite) ScopedIndexNames() bool { return true }

func (SQLite) NonUniqueForeignKeys() bool { return false }

func (SQLite) InlineIndexes() bool { return false }

func (SQLite) TableOptions(*schema.Table) string { return "" }

func (SQLite) Placeholder() sq.PlaceholderFormat { return sq.Question }

func (SQLite) Returning() bool { return false }

// AdvanceSequence returns nil: rowid keys always continue from the largest
// stored value.
func (SQLite) AdvanceSequence(string, string) sq.Sqlizer { return nil }

func (SQLite) GooseDialect() goose.Dialect { return goose.DialectSQLite3 }
