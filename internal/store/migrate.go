package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/fortuna/lahman/internal/logging"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// SchemaVersion is the migration version that creates the catalog.
const SchemaVersion int64 = 1

// MigrationStatus is the state of one migration.
type MigrationStatus struct {
	Version   int64
	Applied   bool
	AppliedAt time.Time
}

// gooseLogger routes goose output through the process logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logging.Debug().Msgf(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logging.Fatal().Msgf(format, v...)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execStatements(ctx context.Context, ex execer, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := ex.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func execAll(stmts []string) func(context.Context, *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		return execStatements(ctx, tx, stmts)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// provider builds a goose provider whose single Go migration creates (up)
// or drops (down) every catalog table.
func (db *Database) provider() (*goose.Provider, error) {
	up, err := dialect.Render(db.catalog, db.dialect)
	if err != nil {
		return nil, fmt.Errorf("rendering schema: %w", err)
	}
	down, err := dialect.RenderDrop(db.catalog, db.dialect)
	if err != nil {
		return nil, fmt.Errorf("rendering drop: %w", err)
	}

	upFunc := &goose.GoFunc{RunTx: execAll(up)}
	if my, ok := db.dialect.(dialect.MySQL); ok {
		// MySQL commits every DDL statement, so there is no transaction to
		// roll back.
		upFunc = &goose.GoFunc{RunDB: func(ctx context.Context, conn *sql.DB) error {
			return createMySQL(ctx, conn, db.catalog, my)
		}}
	}

	m := goose.NewGoMigration(SchemaVersion,
		upFunc,
		&goose.GoFunc{RunTx: execAll(down)},
	)
	return goose.NewProvider(db.dialect.GooseDialect(), db.conn, nil,
		goose.WithGoMigrations(m),
		goose.WithDisableGlobalRegistry(true),
		goose.WithLogger(gooseLogger{}),
	)
}

// Migrate applies every pending migration.
func (db *Database) Migrate(ctx context.Context) error {
	logging.Info().Msg("running database migrations")

	p, err := db.provider()
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if len(results) == 0 {
		logging.Info().Msg("schema is up to date")
		return nil
	}
	for _, r := range results {
		logging.Info().
			Int64("version", r.Source.Version).
			Dur("duration", r.Duration).
			Msg("applied migration")
	}
	return nil
}

// Rollback reverts the most recently applied migration. It is a no-op when
// nothing is applied.
func (db *Database) Rollback(ctx context.Context) error {
	p, err := db.provider()
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	r, err := p.Down(ctx)
	if errors.Is(err, goose.ErrNoNextVersion) {
		logging.Info().Msg("nothing to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	logging.Info().
		Int64("version", r.Source.Version).
		Dur("duration", r.Duration).
		Msg("rolled back migration")
	return nil
}

// Version returns the current schema version, 0 when nothing is applied.
func (db *Database) Version(ctx context.Context) (int64, error) {
	p, err := db.provider()
	if err != nil {
		return 0, fmt.Errorf("failed to create migration provider: %w", err)
	}
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Status reports every known migration and whether it is applied.
func (db *Database) Status(ctx context.Context) ([]MigrationStatus, error) {
	p, err := db.provider()
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}
