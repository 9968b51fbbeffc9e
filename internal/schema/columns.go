package schema

// Column constructors. Columns start out nullable, matching the store's
// defaults; chain NotNull for required columns.

func smallint(name string) *Column {
	return &Column{Name: name, Type: SmallInt, Nullable: true}
}

func integer(name string) *Column {
	return &Column{Name: name, Type: Integer, Nullable: true}
}

func varchar(name string, length int) *Column {
	return &Column{Name: name, Type: Varchar, Length: length, Nullable: true}
}

// text is an unbounded string column.
func text(name string) *Column {
	return &Column{Name: name, Type: Varchar, Nullable: true}
}

func double(name string) *Column {
	return &Column{Name: name, Type: Double, Nullable: true}
}

func float(name string) *Column {
	return &Column{Name: name, Type: Float, Nullable: true}
}

func date(name string) *Column {
	return &Column{Name: name, Type: Date, Nullable: true}
}

func boolean(name string) *Column {
	return &Column{Name: name, Type: Boolean, Nullable: true}
}

// surrogate is an auto-incrementing integer primary key column.
func surrogate(name string) *Column {
	return &Column{Name: name, Type: Integer, AutoIncrement: true}
}

// playerID is the required reference to people.playerID carried by every
// statistical table.
func playerID() *Column {
	return varchar("playerID", 9).NotNull()
}

func yearID() *Column {
	return smallint("yearID").NotNull()
}

func teamID() *Column {
	return varchar("teamID", 3).NotNull()
}

func smallints(names ...string) []*Column {
	cols := make([]*Column, len(names))
	for i, n := range names {
		cols[i] = smallint(n)
	}
	return cols
}

func requiredFloats(names ...string) []*Column {
	cols := make([]*Column, len(names))
	for i, n := range names {
		cols[i] = float(n).NotNull()
	}
	return cols
}

func columns(groups ...[]*Column) []*Column {
	var out []*Column
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func cols(c ...*Column) []*Column {
	return c
}

func pk(columns ...string) PrimaryKey {
	return PrimaryKey{Columns: columns}
}

func fk(column, refTable, refColumn string) ForeignKey {
	return ForeignKey{Columns: []string{column}, RefTable: refTable, RefColumns: []string{refColumn}}
}

func playerFK() ForeignKey {
	return fk("playerID", "people", "playerID")
}

func teamFK() ForeignKey {
	return fk("teamID", "teams", "teamID")
}

func unique(name string, columns ...string) Unique {
	return Unique{Name: name, Columns: columns}
}

func index(name string, columns ...string) Index {
	return Index{Name: name, Columns: columns}
}

// utf8mb3 are the table options of the two tables the store created with
// the legacy three-byte charset.
var utf8mb3 = Options{Charset: "utf8mb3", Collation: "utf8mb3_general_ci"}
