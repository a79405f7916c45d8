// Package postgres is the Postgres HR store. Execute methods lock the row
// with SELECT ... FOR UPDATE inside a transaction and hold it across validate
// and mutate. Overlapping pay periods and duplicate onboarding titles are
// rejected by database constraints and surface as sentinel.ErrConflict.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	"hrms/pkg/domain"
	txcontext "hrms/pkg/platform/tx"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// inTx runs fn in the transaction carried by ctx, or in a new one.
func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context, q txcontext.Querier) error) error {
	if tx, ok := txcontext.From(ctx); ok {
		return fn(ctx, tx)
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(txcontext.WithTx(ctx, tx), tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return pgplatform.Classify(err, "commit")
	}
	return nil
}

// RunInTx runs fn in one transaction. Store calls made with the context fn
// receives join it; fn's error rolls everything back.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.inTx(ctx, func(ctx context.Context, _ txcontext.Querier) error {
		return fn(ctx)
	})
}

// execute loads a locked row, runs validate and mutate against it and saves
// the result in the same transaction. Validation errors are returned as is.
func execute[T any](
	ctx context.Context,
	s *Store,
	load func(ctx context.Context, q txcontext.Querier) (*T, error),
	validate func(*T) error,
	mutate func(*T),
	save func(ctx context.Context, q txcontext.Querier, cur *T) error,
) (*T, error) {
	var out *T
	err := s.inTx(ctx, func(ctx context.Context, q txcontext.Querier) error {
		cur, err := load(ctx, q)
		if err != nil {
			return err
		}
		if err := validate(cur); err != nil {
			return err
		}
		mutate(cur)
		if err := save(ctx, q, cur); err != nil {
			return err
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, q txcontext.Querier, table string, id any, what string) error {
	res, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return pgplatform.Classify(err, "delete "+what)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return pgplatform.Classify(err, "delete "+what)
	}
	if n == 0 {
		return pgplatform.Classify(sql.ErrNoRows, what)
	}
	return nil
}

// insertSQL and updateSQL render named statements over a column list. The
// first column must be id.
func insertSQL(table string, columns []string) string {
	binds := make([]string, len(columns))
	for i, c := range columns {
		binds[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(binds, ", "))
}

func updateSQL(table string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "id" || c == "created_at" {
			continue
		}
		sets = append(sets, c+" = :"+c)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", table, strings.Join(sets, ", "))
}

func selectSQL(table string, columns []string) string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
}

func namedExec(ctx context.Context, q txcontext.Querier, query string, arg any, what string) error {
	if _, err := sqlx.NamedExecContext(ctx, q, query, arg); err != nil {
		return pgplatform.Classify(err, what)
	}
	return nil
}

// predicate accumulates WHERE conditions with positional parameters.
type predicate struct {
	conds []string
	args  []any
}

func (p *predicate) add(cond string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(cond, len(p.args)))
}

// owners restricts column to the filter's owner set. It returns false when
// the filter can match nothing.
func (p *predicate) owners(column string, f models.ListFilter) bool {
	if f.Unrestricted {
		return true
	}
	if len(f.Owners) == 0 {
		return false
	}
	p.add(column+" = ANY($%d)", pq.Array(employeeIDStrings(f.Owners)))
	return true
}

func (p *predicate) status(column, value string) {
	if value != "" {
		p.add(column+" = upper($%d)", value)
	}
}

func (p *predicate) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// list runs the count and page queries for one table.
func list[T any](ctx context.Context, q txcontext.Querier, table string, columns []string, p *predicate, order string, limit, offset int) ([]T, int, error) {
	var total int
	if err := q.GetContext(ctx, &total, `SELECT COUNT(*) FROM `+table+p.where(), p.args...); err != nil {
		return nil, 0, pgplatform.Classify(err, "count "+table)
	}
	args := append(append([]any{}, p.args...), limit, offset)
	query := fmt.Sprintf("%s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectSQL(table, columns), p.where(), order, len(args)-1, len(args))
	var out []T
	if err := q.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, 0, pgplatform.Classify(err, "list "+table)
	}
	return out, total, nil
}

func employeeIDStrings(ids []domain.EmployeeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
