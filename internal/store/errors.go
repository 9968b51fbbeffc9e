package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// Kind is the class of a constraint violation.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnique
	KindForeignKey
	KindCheck
	KindNotNull
	KindTooLong
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrNotNullViolation    = errors.New("not null constraint violation")
	ErrValueTooLong        = errors.New("value too long for column")

	// ErrSchemaNotInitialized is returned when a table is missing, which
	// means migrations have not been applied.
	ErrSchemaNotInitialized = errors.New("schema not initialized: run `lahman migrate`")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnique:
		return ErrUniqueViolation
	case KindForeignKey:
		return ErrForeignKeyViolation
	case KindCheck:
		return ErrCheckViolation
	case KindNotNull:
		return ErrNotNullViolation
	case KindTooLong:
		return ErrValueTooLong
	default:
		return nil
	}
}

func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindForeignKey:
		return "foreign key"
	case KindCheck:
		return "check"
	case KindNotNull:
		return "not null"
	case KindTooLong:
		return "too long"
	default:
		return "unknown"
	}
}

// PrimaryKeyConstraint names primary key violations on every engine.
const PrimaryKeyConstraint = "PRIMARY"

// ConstraintError is a write rejected by the store. Constraint is the
// declared name when the engine reports one; Column is set for not null
// and length violations.
type ConstraintError struct {
	Kind       Kind
	Table      string
	Constraint string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s violation on %s", e.Kind, e.Table)
	if e.Constraint != "" {
		fmt.Fprintf(&b, " (%s)", e.Constraint)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %s", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Is matches the sentinel for the violation kind.
func (e *ConstraintError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// MySQL error numbers.
const (
	mysqlDupEntry              = 1062
	mysqlNoReferencedRow       = 1452
	mysqlRowIsReferenced       = 1451
	mysqlCheckConstraintFailed = 3819
	mysqlBadNull               = 1048
	mysqlDataTooLong           = 1406
	mysqlNoSuchTable           = 1146
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
	pgUndefinedTable      = "42P01"
)

var (
	mysqlKeyRegex        = regexp.MustCompile(`for key '([^']+)'`)
	mysqlFKRegex         = regexp.MustCompile("CONSTRAINT `([^`]+)`")
	mysqlFKTableRegex    = regexp.MustCompile("\\(`[^`]+`\\.`([^`]+)`, CONSTRAINT")
	mysqlCheckRegex      = regexp.MustCompile(`Check constraint '([^']+)'`)
	mysqlColumnRegex     = regexp.MustCompile(`[Cc]olumn '([^']+)'`)
	sqliteUniqueRegex    = regexp.MustCompile(`UNIQUE constraint failed: ([^()]+)`)
	sqliteCheckRegex     = regexp.MustCompile(`CHECK constraint failed: ([A-Za-z0-9_]+)`)
	sqliteNotNullRegex   = regexp.MustCompile(`NOT NULL constraint failed: ([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)`)
	sqliteNoSuchTableMsg = "no such table"
)

// Classifier maps driver errors onto ConstraintError, translating engine
// constraint names back to the names declared in the catalog.
type Classifier struct {
	catalog *schema.Catalog
	namer   *dialect.Namer
}

// NewClassifier builds a classifier for cat on d. A nil d keeps engine names.
func NewClassifier(cat *schema.Catalog, d dialect.Dialect) *Classifier {
	c := &Classifier{catalog: cat}
	if d != nil {
		c.namer = dialect.NewNamer(cat, d)
	}
	return c
}

// ClassifyError classifies err from a write to table against the default catalog.
func ClassifyError(err error, table string) error {
	return NewClassifier(schema.Default(), nil).Classify(err, table)
}

// Classify returns a *ConstraintError for constraint violations, wraps
// missing-table errors in ErrSchemaNotInitialized, and returns any other
// error unchanged.
func (c *Classifier) Classify(err error, table string) error {
	if err == nil {
		return nil
	}
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return c.classifyMySQL(myErr, err, table)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Table != "" {
			table = pqErr.Table
		}
		return c.classifyPostgres(string(pqErr.Code), pqErr.Constraint, pqErr.Column, err, table)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.TableName != "" {
			table = pgErr.TableName
		}
		return c.classifyPostgres(pgErr.Code, pgErr.ConstraintName, pgErr.ColumnName, err, table)
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return c.classifySQLite(sqErr, err, table)
	}
	return err
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func (c *Classifier) classifyMySQL(myErr *mysql.MySQLError, err error, table string) error {
	msg := myErr.Message
	switch myErr.Number {
	case mysqlDupEntry:
		key := submatch(mysqlKeyRegex, msg)
		// MySQL 8 reports the key as table.key.
		if i := strings.LastIndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}
		return &ConstraintError{Kind: KindUnique, Table: table, Constraint: key, Err: err}
	case mysqlNoReferencedRow, mysqlRowIsReferenced:
		if t := submatch(mysqlFKTableRegex, msg); t != "" && myErr.Number == mysqlNoReferencedRow {
			table = t
		}
		return &ConstraintError{Kind: KindForeignKey, Table: table, Constraint: submatch(mysqlFKRegex, msg), Err: err}
	case mysqlCheckConstraintFailed:
		return &ConstraintError{Kind: KindCheck, Table: table, Constraint: submatch(mysqlCheckRegex, msg), Err: err}
	case mysqlBadNull:
		return &ConstraintError{Kind: KindNotNull, Table: table, Column: submatch(mysqlColumnRegex, msg), Err: err}
	case mysqlDataTooLong:
		return &ConstraintError{Kind: KindTooLong, Table: table, Column: submatch(mysqlColumnRegex, msg), Err: err}
	case mysqlNoSuchTable:
		return fmt.Errorf("%w: %w", ErrSchemaNotInitialized, err)
	}
	return err
}

func (c *Classifier) classifyPostgres(code, constraint, column string, err error, table string) error {
	var kind Kind
	switch code {
	case pgUniqueViolation:
		kind = KindUnique
	case pgForeignKeyViolation:
		kind = KindForeignKey
	case pgCheckViolation:
		kind = KindCheck
	case pgNotNullViolation:
		kind = KindNotNull
	case pgStringTooLong:
		kind = KindTooLong
	case pgUndefinedTable:
		return fmt.Errorf("%w: %w", ErrSchemaNotInitialized, err)
	default:
		return err
	}
	if constraint == table+"_pkey" {
		constraint = PrimaryKeyConstraint
	} else if c.namer != nil && constraint != "" {
		constraint = c.namer.Logical(table, constraint)
	}
	return &ConstraintError{Kind: kind, Table: table, Constraint: constraint, Column: column, Err: err}
}

func (c *Classifier) classifySQLite(sqErr *sqlite.Error, err error, table string) error {
	msg := sqErr.Error()
	switch {
	case sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		strings.Contains(msg, "UNIQUE constraint failed"):
		t, constraint := c.sqliteUnique(submatch(sqliteUniqueRegex, msg))
		if t != "" {
			table = t
		}
		return &ConstraintError{Kind: KindUnique, Table: table, Constraint: constraint, Err: err}
	case sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Kind: KindForeignKey, Table: table, Err: err}
	case sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK,
		strings.Contains(msg, "CHECK constraint failed"):
		constraint := submatch(sqliteCheckRegex, msg)
		if c.namer != nil && constraint != "" {
			constraint = c.namer.Logical(table, constraint)
		}
		return &ConstraintError{Kind: KindCheck, Table: table, Constraint: constraint, Err: err}
	case sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_NOTNULL,
		strings.Contains(msg, "NOT NULL constraint failed"):
		var column string
		if m := sqliteNotNullRegex.FindStringSubmatch(msg); m != nil {
			table, column = m[1], m[2]
		}
		return &ConstraintError{Kind: KindNotNull, Table: table, Column: column, Err: err}
	case strings.Contains(msg, sqliteNoSuchTableMsg):
		return fmt.Errorf("%w: %w", ErrSchemaNotInitialized, err)
	}
	return err
}

// sqliteUnique resolves "t.a, t.b" from a SQLite unique failure to the
// table and the declared constraint over exactly those columns.
func (c *Classifier) sqliteUnique(list string) (table, constraint string) {
	var cols []string
	for _, part := range strings.Split(list, ",") {
		t, col, ok := strings.Cut(strings.TrimSpace(part), ".")
		if !ok {
			continue
		}
		table = t
		cols = append(cols, col)
	}
	tbl := c.catalog.Table(table)
	if tbl == nil || len(cols) == 0 {
		return table, ""
	}
	if tbl.IsKey(cols) {
		if u, ok := tbl.UniqueByColumns(cols); ok {
			return table, u.Name
		}
		return table, PrimaryKeyConstraint
	}
	return table, ""
}
