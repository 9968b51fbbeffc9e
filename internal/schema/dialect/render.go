package dialect

import (
	"fmt"
	"strings"

	"github.com/fortuna/lahman/internal/schema"
)

// Namer maps declared index and constraint names to the names created in
// the engine. Where the engine keeps one namespace per schema, a name
// declared by more than one table is prefixed with its table.
type Namer struct {
	scoped bool
	shared map[string]bool
}

// NewNamer builds the naming rules for cat on d.
func NewNamer(cat *schema.Catalog, d Dialect) *Namer {
	n := &Namer{scoped: d.ScopedIndexNames(), shared: make(map[string]bool)}
	for name := range cat.SharedNames() {
		n.shared[name] = true
	}
	return n
}

// Physical returns the engine name of the index or constraint name on table.
func (n *Namer) Physical(table, name string) string {
	if n.scoped && n.shared[name] {
		return table + "_" + name
	}
	return name
}

// Logical reverses Physical.
func (n *Namer) Logical(table, physical string) string {
	if !n.scoped {
		return physical
	}
	if name, ok := strings.CutPrefix(physical, table+"_"); ok && n.shared[name] {
		return name
	}
	return physical
}

// TableDDL holds the statements that create one table and its indexes.
type TableDDL struct {
	Table      string
	Statements []string
}

// RenderTables returns the DDL of every table of cat, parents first.
// Foreign keys the engine cannot enforce are left out; see
// Catalog.NonUniqueReferences.
func RenderTables(cat *schema.Catalog, d Dialect) ([]TableDDL, error) {
	ordered, err := cat.Ordered()
	if err != nil {
		return nil, err
	}
	namer := NewNamer(cat, d)

	out := make([]TableDDL, 0, len(ordered))
	for _, t := range ordered {
		ddl := TableDDL{Table: t.Name, Statements: []string{createTable(cat, d, namer, t)}}
		if !d.InlineIndexes() {
			for _, idx := range t.Indexes {
				ddl.Statements = append(ddl.Statements, fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
					d.Quote(namer.Physical(t.Name, idx.Name)), d.Quote(t.Name), quoteList(d, idx.Columns)))
			}
		}
		out = append(out, ddl)
	}
	return out, nil
}

// Render returns the statements that create every table of cat, parents
// first, as one flat list.
func Render(cat *schema.Catalog, d Dialect) ([]string, error) {
	tables, err := RenderTables(cat, d)
	if err != nil {
		return nil, err
	}
	var stmts []string
	for _, t := range tables {
		stmts = append(stmts, t.Statements...)
	}
	return stmts, nil
}

// RenderDrop returns the statements that drop every table of cat, children first.
func RenderDrop(cat *schema.Catalog, d Dialect) ([]string, error) {
	ordered, err := cat.Ordered()
	if err != nil {
		return nil, err
	}
	stmts := make([]string, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		stmts = append(stmts, "DROP TABLE IF EXISTS "+d.Quote(ordered[i].Name))
	}
	return stmts, nil
}

// Script joins statements into one semicolon-terminated script.
func Script(stmts []string) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(s)
		b.WriteString(";\n")
	}
	return b.String()
}

func createTable(cat *schema.Catalog, d Dialect, namer *Namer, t *schema.Table) string {
	var defs []string
	for _, col := range t.Columns {
		defs = append(defs, d.ColumnDef(col))
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", quoteList(d, t.PrimaryKey.Columns)))
	for _, u := range t.Uniques {
		if u.Name == "" {
			defs = append(defs, fmt.Sprintf("UNIQUE (%s)", quoteList(d, u.Columns)))
			continue
		}
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)",
			d.Quote(namer.Physical(t.Name, u.Name)), quoteList(d, u.Columns)))
	}
	if d.InlineIndexes() {
		for _, idx := range t.Indexes {
			defs = append(defs, fmt.Sprintf("KEY %s (%s)",
				d.Quote(namer.Physical(t.Name, idx.Name)), quoteList(d, idx.Columns)))
		}
	}
	for _, chk := range t.Checks {
		values := make([]string, len(chk.In))
		for i, v := range chk.In {
			values[i] = quoteLiteral(v)
		}
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s CHECK (%s IN (%s))",
			d.Quote(namer.Physical(t.Name, chk.Name)), d.Quote(chk.Column), strings.Join(values, ", ")))
	}
	for _, fk := range t.ForeignKeys {
		if !d.NonUniqueForeignKeys() && cat.IsNonUnique(fk) {
			continue
		}
		def := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			quoteList(d, fk.Columns), d.Quote(fk.RefTable), quoteList(d, fk.RefColumns))
		if fk.Name != "" {
			def = fmt.Sprintf("CONSTRAINT %s %s", d.Quote(namer.Physical(t.Name, fk.Name)), def)
		}
		defs = append(defs, def)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n  %s\n)", d.Quote(t.Name), strings.Join(defs, ",\n  "))
	if opts := d.TableOptions(t); opts != "" {
		b.WriteByte(' ')
		b.WriteString(opts)
	}
	return b.String()
}

func quoteList(d Dialect, idents []string) string {
	quoted := make([]string, len(idents))
	for i, id := range idents {
		quoted[i] = d.Quote(id)
	}
	return strings.Join(quoted, ", ")
}
