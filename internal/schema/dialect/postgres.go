package dialect

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/fortuna/lahman/internal/schema"
)

// Postgres renders for PostgreSQL. Identifiers are always quoted so the
// mixed-case column names survive unchanged.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Quote(ident string) string { return quoteWith(`"`, ident) }

func (p Postgres) ColumnDef(col *schema.Column) string {
	var b strings.Builder
	b.WriteString(p.Quote(col.Name))
	b.WriteByte(' ')
	switch {
	case col.AutoIncrement:
		b.WriteString("SERIAL")
	case col.Type == schema.SmallInt:
		b.WriteString("SMALLINT")
	case col.Type == schema.Integer:
		b.WriteString("INTEGER")
	case col.Type == schema.Varchar && col.Length > 0:
		fmt.Fprintf(&b, "VARCHAR(%d)", col.Length)
	case col.Type == schema.Varchar:
		b.WriteString("VARCHAR")
	case col.Type == schema.Double:
		b.WriteString("DOUBLE PRECISION")
	case col.Type == schema.Float:
		b.WriteString("REAL")
	case col.Type == schema.Date:
		b.WriteString("DATE")
	case col.Type == schema.Boolean:
		b.WriteString("BOOLEAN")
	}
	if !col.Nullable {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

func (Postgres) ScopedIndexNames() bool { return true }

func (Postgres) NonUniqueForeignKeys() bool { return false }

func (Postgres) InlineIndexes() bool { return false }

func (Postgres) TableOptions(*schema.Table) string { return "" }

func (Postgres) Placeholder() sq.PlaceholderFormat { return sq.Dollar }

func (Postgres) Returning() bool { return true }

// AdvanceSequence resets the SERIAL sequence of column to the largest stored
// key, so rows inserted with an explicit key do not collide with generated
// ones later.
func (p Postgres) AdvanceSequence(table, column string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("SELECT setval(pg_get_serial_sequence(?, ?), (SELECT MAX(%s) FROM %s))",
		p.Quote(column), p.Quote(table)), p.Quote(table), column)
}

func (Postgres) GooseDialect() goose.Dialect { return goose.DialectPostgres }
