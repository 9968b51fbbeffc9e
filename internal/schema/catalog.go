// Package schema declares the relational layout of the historical baseball
// statistics store: every table, column, key, constraint and index.
//
// The declarations mirror the physical layout of the MySQL store they were
// taken from. Rendering to DDL for a concrete engine lives in the dialect
// subpackage; this package only describes structure.
package schema

import "fmt"

// Type is the storage type of a column.
type Type int

const (
	// SmallInt is a 16-bit signed integer.
	SmallInt Type = iota + 1
	// Integer is a 32-bit signed integer.
	Integer
	// Varchar is a variable-length string bounded by Column.Length.
	// A zero length means unbounded.
	Varchar
	// Double is a 64-bit IEEE float.
	Double
	// Float is a 32-bit IEEE float.
	Float
	// Date is a calendar date without time of day.
	Date
	// Boolean is a true/false flag.
	Boolean
)

func (t Type) String() string {
	switch t {
	case SmallInt:
		return "SMALLINT"
	case Integer:
		return "INTEGER"
	case Varchar:
		return "VARCHAR"
	case Double:
		return "DOUBLE"
	case Float:
		return "FLOAT"
	case Date:
		return "DATE"
	case Boolean:
		return "BOOLEAN"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Column describes one column of a table.
type Column struct {
	Name          string
	Type          Type
	Length        int
	Nullable      bool
	AutoIncrement bool

	// Default is applied by the mapping layer when a row is inserted with a
	// NULL value for the column. It is not part of the DDL.
	Default any
}

// NotNull marks the column as required.
func (c *Column) NotNull() *Column {
	c.Nullable = false
	return c
}

// WithDefault sets the insert-time default for the column.
func (c *Column) WithDefault(v any) *Column {
	c.Default = v
	return c
}

// String renders the column type as it is declared, e.g. VARCHAR(9).
func (c *Column) String() string {
	if c.Type == Varchar && c.Length > 0 {
		return fmt.Sprintf("%s(%d)", c.Type, c.Length)
	}
	return c.Type.String()
}

// PrimaryKey lists the columns of a table's primary key.
type PrimaryKey struct {
	Columns []string
}

// ForeignKey references columns of another table. An empty Name leaves
// naming to the engine.
type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// Unique is a named uniqueness constraint over one or more columns.
type Unique struct {
	Name    string
	Columns []string
}

// Check restricts a column to a literal set of values.
type Check struct {
	Name   string
	Column string
	In     []string
}

// Index is a non-unique secondary index.
type Index struct {
	Name    string
	Columns []string
}

// Options carries engine table options. Only MySQL uses them.
type Options struct {
	Charset   string
	Collation string
}

// Table is the full declaration of one table.
type Table struct {
	Name        string
	Columns     []*Column
	PrimaryKey  PrimaryKey
	ForeignKeys []ForeignKey
	Uniques     []Unique
	Checks      []Check
	Indexes     []Index
	Options     Options
}

// Column returns the named column or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Surrogate returns the auto-incrementing key column, if the table has one.
func (t *Table) Surrogate() *Column {
	if len(t.PrimaryKey.Columns) != 1 {
		return nil
	}
	c := t.Column(t.PrimaryKey.Columns[0])
	if c == nil || !c.AutoIncrement {
		return nil
	}
	return c
}

// UniqueByColumns finds the unique constraint covering exactly cols, in order.
func (t *Table) UniqueByColumns(cols []string) (Unique, bool) {
	for _, u := range t.Uniques {
		if equalColumns(u.Columns, cols) {
			return u, true
		}
	}
	return Unique{}, false
}

// IsKey reports whether cols are exactly the primary key or a unique constraint.
func (t *Table) IsKey(cols []string) bool {
	if equalColumns(t.PrimaryKey.Columns, cols) {
		return true
	}
	_, ok := t.UniqueByColumns(cols)
	return ok
}

// ConstraintNames returns the names of every named unique, check, foreign
// key and index on the table.
func (t *Table) ConstraintNames() []string {
	var names []string
	for _, u := range t.Uniques {
		if u.Name != "" {
			names = append(names, u.Name)
		}
	}
	for _, c := range t.Checks {
		names = append(names, c.Name)
	}
	for _, fk := range t.ForeignKeys {
		if fk.Name != "" {
			names = append(names, fk.Name)
		}
	}
	for _, idx := range t.Indexes {
		names = append(names, idx.Name)
	}
	return names
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Catalog is an ordered set of tables.
type Catalog struct {
	tables []*Table
	byName map[string]*Table
}

// New builds a catalog from tables in declaration order.
func New(tables ...*Table) *Catalog {
	c := &Catalog{byName: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		c.tables = append(c.tables, t)
		c.byName[t.Name] = t
	}
	return c
}

// Tables returns the tables in declaration order.
func (c *Catalog) Tables() []*Table {
	out := make([]*Table, len(c.tables))
	copy(out, c.tables)
	return out
}

// Table returns the named table or nil.
func (c *Catalog) Table(name string) *Table {
	return c.byName[name]
}

// Len returns the number of tables.
func (c *Catalog) Len() int {
	return len(c.tables)
}

// Default returns the baseball statistics catalog. Each call builds a fresh
// copy, so callers may not observe each other's mutations.
func Default() *Catalog {
	return New(
		people(),
		managers(),
		awards(),
		awardsShare(),
		batting(),
		battingPost(),
		careerWarLeaders(),
		seasonWarLeaders(),
		draft(),
		hallOfFame(),
		noHitters(),
		leagues(),
		collegePlaying(),
		teams(),
		allstarFull(),
		schools(),
		seriesPost(),
		pitching(),
		pitchingPost(),
		appearances(),
		fielding(),
		fieldingPost(),
		salaries(),
		homeGames(),
		parks(),
		divisions(),
		wobaWeights(),
	)
}
