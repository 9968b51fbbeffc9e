package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	sq "github.com/Masterminds/squirrel"

	"github.com/fortuna/lahman/internal/logging"
	"github.com/fortuna/lahman/internal/store"
)

// ErrNotFound is returned when no row has the requested key.
var ErrNotFound = errors.New("row not found")

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository reads and writes rows of type T in the table T names.
type Repository[T store.Model] struct {
	db      *store.Database
	mapping *mapping
	sb      sq.StatementBuilderType
}

// New binds T to its table, failing if the struct and the table disagree on
// columns.
func New[T store.Model](db *store.Database) (*Repository[T], error) {
	var zero T
	table := db.Catalog().Table(zero.TableName())
	if table == nil {
		return nil, fmt.Errorf("unknown table %q", zero.TableName())
	}
	m, err := mappingFor(reflect.TypeOf(zero), table)
	if err != nil {
		return nil, err
	}
	return &Repository[T]{
		db:      db,
		mapping: m,
		sb:      sq.StatementBuilder.PlaceholderFormat(db.Dialect().Placeholder()),
	}, nil
}

// Table returns the name of the table the repository writes.
func (r *Repository[T]) Table() string {
	return r.mapping.table.Name
}

func (r *Repository[T]) quote(ident string) string {
	return r.db.Dialect().Quote(ident)
}

func (r *Repository[T]) quoteAll(idents []string) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = r.quote(id)
	}
	return out
}

// Key returns the primary key values of row in key column order.
func (r *Repository[T]) Key(row *T) []any {
	v := reflect.ValueOf(row).Elem()
	pk := r.mapping.table.PrimaryKey.Columns
	out := make([]any, len(pk))
	for i, col := range pk {
		out[i] = v.FieldByIndex(r.mapping.fields[r.mapping.byColumn[col]].index).Interface()
	}
	return out
}

// Insert writes row. A zero surrogate key is left to the database and the
// generated value is stored back into row. NULL fields whose column has a
// default receive it before the write.
func (r *Repository[T]) Insert(ctx context.Context, row *T) error {
	return r.insert(ctx, r.db.DB(), row)
}

// InsertAll writes rows in one transaction. Either every row is written or
// none is.
func (r *Repository[T]) InsertAll(ctx context.Context, rows []*T) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	for i, row := range rows {
		if err := r.insert(ctx, tx, row); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Str("table", r.Table()).Msg("rollback failed")
			}
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", r.Table(), err)
	}
	logging.Debug().Str("table", r.Table()).Int("rows", len(rows)).Msg("inserted rows")
	return nil
}

func (r *Repository[T]) insert(ctx context.Context, ex execer, row *T) error {
	v := reflect.ValueOf(row).Elem()
	if err := r.mapping.applyDefaults(v); err != nil {
		return err
	}

	names := r.mapping.columnNames()
	values := r.mapping.values(v)
	id, hasSurrogate := r.mapping.surrogateField(v)
	generate := hasSurrogate && id.Int() == 0
	if generate {
		names = append(names[:r.mapping.surrogate:r.mapping.surrogate], names[r.mapping.surrogate+1:]...)
		values = append(values[:r.mapping.surrogate:r.mapping.surrogate], values[r.mapping.surrogate+1:]...)
	}

	b := r.sb.Insert(r.quote(r.Table())).
		Columns(r.quoteAll(names)...).
		Values(values...)

	if generate && r.db.Dialect().Returning() {
		query, args, err := b.Suffix("RETURNING " + r.quote(r.mapping.fields[r.mapping.surrogate].column.Name)).ToSql()
		if err != nil {
			return fmt.Errorf("building insert into %s: %w", r.Table(), err)
		}
		var generated int64
		if err := ex.QueryRowContext(ctx, query, args...).Scan(&generated); err != nil {
			return r.db.ClassifyError(err, r.Table())
		}
		id.SetInt(generated)
		return nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("building insert into %s: %w", r.Table(), err)
	}
	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.ClassifyError(err, r.Table())
	}
	if generate {
		generated, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading generated key of %s: %w", r.Table(), err)
		}
		id.SetInt(generated)
		return nil
	}
	if hasSurrogate {
		return r.advanceSequence(ctx, ex)
	}
	return nil
}

// advanceSequence keeps the key generator ahead of an explicitly inserted
// surrogate key on engines that do not do so themselves.
func (r *Repository[T]) advanceSequence(ctx context.Context, ex execer) error {
	d := r.db.Dialect()
	stmt := d.AdvanceSequence(r.Table(), r.mapping.fields[r.mapping.surrogate].column.Name)
	if stmt == nil {
		return nil
	}
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("building sequence update for %s: %w", r.Table(), err)
	}
	if query, err = d.Placeholder().ReplacePlaceholders(query); err != nil {
		return fmt.Errorf("building sequence update for %s: %w", r.Table(), err)
	}
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("advancing key sequence of %s: %w", r.Table(), err)
	}
	return nil
}

func (r *Repository[T]) keyPredicate(key []any) (sq.Eq, error) {
	pk := r.mapping.table.PrimaryKey.Columns
	if len(key) != len(pk) {
		return nil, fmt.Errorf("%s: key has %d values, want %d", r.Table(), len(key), len(pk))
	}
	eq := make(sq.Eq, len(pk))
	for i, col := range pk {
		eq[r.quote(col)] = key[i]
	}
	return eq, nil
}

// Get returns the row with the given primary key.
func (r *Repository[T]) Get(ctx context.Context, key ...any) (*T, error) {
	where, err := r.keyPredicate(key)
	if err != nil {
		return nil, err
	}
	query, args, err := r.sb.Select(r.quoteAll(r.mapping.columnNames())...).
		From(r.quote(r.Table())).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select from %s: %w", r.Table(), err)
	}

	row := new(T)
	err = r.db.DB().QueryRowContext(ctx, query, args...).Scan(r.mapping.targets(reflect.ValueOf(row).Elem())...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %v: %w", r.Table(), key, ErrNotFound)
	}
	if err != nil {
		return nil, r.db.ClassifyError(err, r.Table())
	}
	return row, nil
}

// Delete removes the row with the given primary key. Deleting a row that
// other rows still reference fails with store.ErrForeignKeyViolation.
func (r *Repository[T]) Delete(ctx context.Context, key ...any) error {
	where, err := r.keyPredicate(key)
	if err != nil {
		return err
	}
	query, args, err := r.sb.Delete(r.quote(r.Table())).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("building delete from %s: %w", r.Table(), err)
	}
	res, err := r.db.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.ClassifyError(err, r.Table())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", r.Table(), key, ErrNotFound)
	}
	return nil
}

// Count returns the number of rows in the table.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(r.quote(r.Table())).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count of %s: %w", r.Table(), err)
	}
	var n int64
	if err := r.db.DB().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.db.ClassifyError(err, r.Table())
	}
	return n, nil
}
