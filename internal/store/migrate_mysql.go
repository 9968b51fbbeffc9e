package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fortuna/lahman/internal/logging"
	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// nonStandardKeyVar is the MySQL 8.4+ switch that rejects foreign keys whose
// parent columns are not a primary key or unique constraint.
const nonStandardKeyVar = "restrict_fk_on_non_standard_key"

// keyPolicy is how a server treats foreign keys to non-unique columns.
type keyPolicy int

const (
	// keysAccepted: the server accepts them as is (MySQL before 8.4).
	keysAccepted keyPolicy = iota
	// keysUnlocked: the session variable was switched off and must be
	// restored before the connection goes back to the pool.
	keysUnlocked
	// keysRefused: the server refuses them and they must be left out.
	keysRefused
)

// allowNonStandardKeys prepares conn for foreign keys to non-unique columns.
func allowNonStandardKeys(ctx context.Context, conn *sql.Conn) (keyPolicy, error) {
	var name, value string
	err := conn.QueryRowContext(ctx, "SHOW SESSION VARIABLES LIKE '"+nonStandardKeyVar+"'").Scan(&name, &value)
	if errors.Is(err, sql.ErrNoRows) {
		return keysAccepted, nil
	}
	if err != nil {
		return keysRefused, fmt.Errorf("reading %s: %w", nonStandardKeyVar, err)
	}
	if !strings.EqualFold(value, "ON") && value != "1" {
		return keysAccepted, nil
	}
	if _, err := conn.ExecContext(ctx, "SET SESSION "+nonStandardKeyVar+" = OFF"); err != nil {
		logging.Warn().Err(err).Msg("server refuses foreign keys to non-unique columns, leaving them out")
		return keysRefused, nil
	}
	return keysUnlocked, nil
}

// createMySQL creates every table on one connection. A failed statement
// drops the tables this call created, so the next migrate starts clean.
func createMySQL(ctx context.Context, db *sql.DB, cat *schema.Catalog, d dialect.MySQL) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	policy, err := allowNonStandardKeys(ctx, conn)
	if err != nil {
		return err
	}
	switch policy {
	case keysRefused:
		d.StandardKeysOnly = true
	case keysUnlocked:
		defer func() {
			if _, rerr := conn.ExecContext(context.WithoutCancel(ctx), "SET SESSION "+nonStandardKeyVar+" = DEFAULT"); rerr != nil {
				logging.Debug().Err(rerr).Msg("restoring session variable")
			}
		}()
	}

	tables, err := dialect.RenderTables(cat, d)
	if err != nil {
		return fmt.Errorf("rendering schema: %w", err)
	}

	created := make([]string, 0, len(tables))
	for _, t := range tables {
		if err := execStatements(ctx, conn, t.Statements); err != nil {
			return errors.Join(err, dropTables(context.WithoutCancel(ctx), conn, d, created))
		}
		created = append(created, t.Table)
	}
	return nil
}

// dropTables drops names in reverse order.
func dropTables(ctx context.Context, conn *sql.Conn, d dialect.Dialect, names []string) error {
	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+d.Quote(names[i])); err != nil {
			errs = append(errs, fmt.Errorf("dropping %s: %w", names[i], err))
		}
	}
	if len(errs) == 0 && len(names) > 0 {
		logging.Warn().Int("tables", len(names)).Msg("dropped partially created schema")
	}
	return errors.Join(errs...)
}
