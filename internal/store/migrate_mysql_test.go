package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// teamsCatalog holds teams and its parents; teams.divID is a reference to a
// non-unique column.
func teamsCatalog() *schema.Catalog {
	def := schema.Default()
	return schema.New(def.Table("leagues"), def.Table("divisions"), def.Table("teams"))
}

func renderTables(t *testing.T, cat *schema.Catalog, d dialect.MySQL) []dialect.TableDDL {
	t.Helper()
	tables, err := dialect.RenderTables(cat, d)
	require.NoError(t, err)
	require.Len(t, tables, 3)
	return tables
}

const (
	showKeyVar    = "SHOW SESSION VARIABLES LIKE 'restrict_fk_on_non_standard_key'"
	unlockKeyVar  = "SET SESSION restrict_fk_on_non_standard_key = OFF"
	restoreKeyVar = "SET SESSION restrict_fk_on_non_standard_key = DEFAULT"
)

func TestCreateMySQLUnlocksNonStandardKeys(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer conn.Close()

	cat := teamsCatalog()
	tables := renderTables(t, cat, dialect.NewMySQL())
	assert.Contains(t, tables[2].Statements[0], "REFERENCES `divisions`")

	mock.ExpectQuery(showKeyVar).
		WillReturnRows(sqlmock.NewRows([]string{"Variable_name", "Value"}).AddRow("restrict_fk_on_non_standard_key", "ON"))
	mock.ExpectExec(unlockKeyVar).WillReturnResult(sqlmock.NewResult(0, 0))
	for _, tbl := range tables {
		mock.ExpectExec(tbl.Statements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(restoreKeyVar).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, createMySQL(context.Background(), conn, cat, dialect.NewMySQL()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMySQLBeforeNonStandardKeyVariable(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer conn.Close()

	cat := teamsCatalog()
	tables := renderTables(t, cat, dialect.NewMySQL())

	// MySQL 8.0 and MariaDB do not have the variable and accept the keys.
	mock.ExpectQuery(showKeyVar).WillReturnRows(sqlmock.NewRows([]string{"Variable_name", "Value"}))
	for _, tbl := range tables {
		mock.ExpectExec(tbl.Statements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, createMySQL(context.Background(), conn, cat, dialect.NewMySQL()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMySQLLeavesOutRefusedKeys(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer conn.Close()

	cat := teamsCatalog()
	strict := dialect.NewMySQL()
	strict.StandardKeysOnly = true
	tables := renderTables(t, cat, strict)
	assert.NotContains(t, tables[2].Statements[0], "REFERENCES `divisions`")
	assert.Contains(t, tables[2].Statements[0], "REFERENCES `leagues`")

	mock.ExpectQuery(showKeyVar).
		WillReturnRows(sqlmock.NewRows([]string{"Variable_name", "Value"}).AddRow("restrict_fk_on_non_standard_key", "ON"))
	mock.ExpectExec(unlockKeyVar).WillReturnError(&mysql.MySQLError{Number: 1227, Message: "Access denied"})
	for _, tbl := range tables {
		mock.ExpectExec(tbl.Statements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, createMySQL(context.Background(), conn, cat, dialect.NewMySQL()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMySQLDropsPartialSchema(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer conn.Close()

	cat := teamsCatalog()
	tables := renderTables(t, cat, dialect.NewMySQL())
	exists := &mysql.MySQLError{Number: 1050, Message: "Table 'teams' already exists"}

	mock.ExpectQuery(showKeyVar).
		WillReturnRows(sqlmock.NewRows([]string{"Variable_name", "Value"}).AddRow("restrict_fk_on_non_standard_key", "OFF"))
	mock.ExpectExec(tables[0].Statements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tables[1].Statements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tables[2].Statements[0]).WillReturnError(exists)
	// Only the tables this run created are dropped; the existing teams
	// table is left alone.
	mock.ExpectExec("DROP TABLE IF EXISTS `divisions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS `leagues`").WillReturnResult(sqlmock.NewResult(0, 0))

	err = createMySQL(context.Background(), conn, cat, dialect.NewMySQL())
	require.Error(t, err)
	var me *mysql.MySQLError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, uint16(1050), me.Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}
