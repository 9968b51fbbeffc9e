package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/fortuna/lahman/internal/config"
	"github.com/fortuna/lahman/internal/logging"
	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// pingTimeout bounds a single connection attempt.
const pingTimeout = 5 * time.Second

// Database is an open connection pool bound to the schema catalog and the
// dialect it is rendered in.
type Database struct {
	conn       *sql.DB
	dialect    dialect.Dialect
	catalog    *schema.Catalog
	classifier *Classifier
}

// NewDatabase opens the configured database and waits for it to accept
// connections, retrying with exponential backoff up to cfg.ConnectTimeout.
func NewDatabase(ctx context.Context, cfg config.Database) (*Database, error) {
	d, err := dialect.ByName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	driver, dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if d.Name() == "sqlite" {
		// One connection keeps an in-memory database alive and serializes
		// writers, which SQLite requires anyway.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := ping(ctx, conn, cfg.ConnectTimeout); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logging.Info().Str("driver", driver).Str("dialect", d.Name()).Msg("connected to database")

	return NewFromDB(conn, d), nil
}

func ping(ctx context.Context, conn *sql.DB, timeout time.Duration) error {
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if timeout > 0 {
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = timeout
		policy = b
	}
	op := func() error {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return conn.PingContext(pctx)
	}
	notify := func(err error, next time.Duration) {
		logging.Warn().Err(err).Dur("retry_in", next).Msg("database not ready")
	}
	return backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify)
}

// NewFromDB wraps an already open pool.
func NewFromDB(conn *sql.DB, d dialect.Dialect) *Database {
	cat := schema.Default()
	return &Database{
		conn:       conn,
		dialect:    d,
		catalog:    cat,
		classifier: NewClassifier(cat, d),
	}
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

func (db *Database) Dialect() dialect.Dialect {
	return db.dialect
}

func (db *Database) Catalog() *schema.Catalog {
	return db.catalog
}

// ClassifyError maps a driver error from a write to table onto a
// *ConstraintError where it is a constraint violation.
func (db *Database) ClassifyError(err error, table string) error {
	return db.classifier.Classify(err, table)
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
