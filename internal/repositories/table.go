package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "innstay/internal/db"
	"innstay/internal/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

// table holds the statements shared by every record kind. T is the row
// struct scanned through its db tags.
type table[T any] struct {
	db          *sqlx.DB
	name        string
	resource    string
	columns     []string
	conflictMsg string
	record      func(T) goqu.Record
}

func (t table[T]) selectDS() *goqu.SelectDataset {
	cols := make([]any, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c
	}
	return intdb.Dialect.From(t.name).Select(cols...).Prepared(true)
}

func (t table[T]) list(ctx context.Context, where []exp.Expression, limit uint) ([]T, error) {
	ds := t.selectDS().Where(where...).Order(goqu.C("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}
	q, args, err := ds.ToSQL()
	if err != nil {
		return nil, t.internal("build list", err)
	}
	out := []T{}
	if err := sqlx.SelectContext(ctx, t.db, &out, q, args...); err != nil {
		return nil, t.internal("list", err)
	}
	return out, nil
}

func (t table[T]) getBy(ctx context.Context, q sqlx.QueryerContext, where exp.Expression, lock bool) (T, error) {
	var row T
	ds := t.selectDS().Where(where).Limit(1)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return row, t.internal("build get", err)
	}
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, domain.NotFoundError{Resource: t.resource, Err: err}
		}
		return row, t.internal("get", err)
	}
	return row, nil
}

func (t table[T]) get(ctx context.Context, id int64) (T, error) {
	return t.getBy(ctx, t.db, goqu.C("id").Eq(id), false)
}

func (t table[T]) create(ctx context.Context, row T) (T, error) {
	var zero T
	q, args, err := intdb.Dialect.Insert(t.name).Rows(t.record(row)).Prepared(true).ToSQL()
	if err != nil {
		return zero, t.internal("build insert", err)
	}
	res, err := t.db.ExecContext(ctx, q, args...)
	if err != nil {
		return zero, t.writeErr("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return zero, t.internal("insert", err)
	}
	return t.get(ctx, id)
}

// update runs read-modify-write in one transaction, holding the row lock
// until commit so concurrent partial updates do not overwrite each other.
func (t table[T]) update(ctx context.Context, id int64, mutate func(*T) error) (T, error) {
	var zero T
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, t.internal("begin update", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := t.getBy(ctx, tx, goqu.C("id").Eq(id), true)
	if err != nil {
		return zero, err
	}
	if err := mutate(&row); err != nil {
		return zero, err
	}

	q, args, err := intdb.Dialect.Update(t.name).
		Set(t.record(row)).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return zero, t.internal("build update", err)
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return zero, t.writeErr("update", err)
	}
	if err := tx.Commit(); err != nil {
		return zero, t.internal("commit update", err)
	}
	return t.get(ctx, id)
}

// delete is unconditional; a missing row is not an error.
func (t table[T]) delete(ctx context.Context, id int64) error {
	q, args, err := intdb.Dialect.Delete(t.name).Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return t.internal("build delete", err)
	}
	if _, err := t.db.ExecContext(ctx, q, args...); err != nil {
		return t.internal("delete", err)
	}
	return nil
}

func (t table[T]) writeErr(op string, err error) error {
	if intdb.IsDuplicateKey(err) {
		msg := t.conflictMsg
		if msg == "" {
			msg = t.resource + " already exists"
		}
		return domain.ConflictError{Msg: msg, Err: err}
	}
	return t.internal(op, err)
}

func (t table[T]) internal(op string, err error) error {
	return domain.InternalError{Msg: fmt.Sprintf("%s %s", op, t.name), Err: err}
}
