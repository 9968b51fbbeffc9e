package dialect

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/fortuna/lahman/internal/schema"
)

// unboundedVarchar is the length given to unbounded strings on MySQL, where
// every key column needs a bounded length.
const unboundedVarchar = 255

// MySQL renders for InnoDB. Every table gets the same charset so string
// foreign keys compare equal, and the legacy three-byte charset keeps the
// four-column parks key under the index prefix limit.
type MySQL struct {
	Engine    string
	Charset   string
	Collation string

	// StandardKeysOnly leaves out foreign keys whose target is not a primary
	// key or unique constraint, for servers that refuse them.
	StandardKeysOnly bool
}

// NewMySQL returns the MySQL dialect with the store's table defaults.
func NewMySQL() MySQL {
	return MySQL{Engine: "InnoDB", Charset: "utf8mb3", Collation: "utf8mb3_general_ci"}
}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Quote(ident string) string { return quoteWith("`", ident) }

func (m MySQL) ColumnDef(col *schema.Column) string {
	var b strings.Builder
	b.WriteString(m.Quote(col.Name))
	b.WriteByte(' ')
	switch col.Type {
	case schema.SmallInt:
		b.WriteString("SMALLINT")
	case schema.Integer:
		b.WriteString("INT")
	case schema.Varchar:
		n := col.Length
		if n == 0 {
			n = unboundedVarchar
		}
		fmt.Fprintf(&b, "VARCHAR(%d)", n)
	case schema.Double:
		b.WriteString("DOUBLE")
	case schema.Float:
		b.WriteString("FLOAT")
	case schema.Date:
		b.WriteString("DATE")
	case schema.Boolean:
		b.WriteString("BOOL")
	}
	if !col.Nullable {
		b.WriteString(" NOT NULL")
	}
	if col.AutoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	return b.String()
}

func (MySQL) ScopedIndexNames() bool { return false }

func (m MySQL) NonUniqueForeignKeys() bool { return !m.StandardKeysOnly }

func (MySQL) InlineIndexes() bool { return true }

func (m MySQL) TableOptions(t *schema.Table) string {
	charset, collation := m.Charset, m.Collation
	if t.Options.Charset != "" {
		charset = t.Options.Charset
	}
	if t.Options.Collation != "" {
		collation = t.Options.Collation
	}
	var opts []string
	if m.Engine != "" {
		opts = append(opts, "ENGINE="+m.Engine)
	}
	if charset != "" {
		opts = append(opts, "DEFAULT CHARSET="+charset)
	}
	if collation != "" {
		opts = append(opts, "COLLATE="+collation)
	}
	return strings.Join(opts, " ")
}

func (MySQL) Placeholder() sq.PlaceholderFormat { return sq.Question }

func (MySQL) Returning() bool { return false }

func (MySQL) AdvanceSequence(string, string) sq.Sqlizer { return nil }

func (MySQL) GooseDialect() goose.Dialect { return goose.DialectMySQL }
