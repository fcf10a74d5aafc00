package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
	"github.com/oksasatya/go-ddd-records/internal/domain/repository"
)

// RecordRepository stores one record type in its own table.
// Every call runs in a dedicated transaction; the pooled connection is
// released when that transaction commits or rolls back.
type RecordRepository[T any] struct {
	db     DB
	schema entity.Schema[T]

	insertSQL string
	listSQL   string
	getSQL    string
	updateSQL string
	deleteSQL string
}

func NewRecordRepository[T any](db DB, schema entity.Schema[T]) *RecordRepository[T] {
	cols := strings.Join(schema.Columns, ", ")
	returning := "id, " + cols

	placeholders := make([]string, len(schema.Columns))
	assignments := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	return &RecordRepository[T]{
		db:        db,
		schema:    schema,
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s", schema.Table, cols, strings.Join(placeholders, ", "), returning),
		listSQL:   fmt.Sprintf("SELECT %s FROM %s ORDER BY id", returning, schema.Table),
		getSQL:    fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", returning, schema.Table),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s", schema.Table, strings.Join(assignments, ", "), len(schema.Columns)+1, returning),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = $1", schema.Table),
	}
}

// inTx runs fn as one unit of work.
func (r *RecordRepository[T]) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s tx: %w", r.schema.Table, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s tx: %w", r.schema.Table, err)
	}
	return nil
}

func (r *RecordRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, r.insertSQL, r.schema.Values(rec)...).Scan(r.schema.ScanTargets(rec)...)
	})
}

func (r *RecordRepository[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, r.listSQL)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec T
			if err := rows.Scan(r.schema.ScanTargets(&rec)...); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	rec := new(T)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, r.getSQL, id).Scan(r.schema.ScanTargets(rec)...)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *RecordRepository[T]) Update(ctx context.Context, id int64, rec *T) error {
	args := append(r.schema.Values(rec), id)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, r.updateSQL, args...).Scan(r.schema.ScanTargets(rec)...)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *RecordRepository[T]) Delete(ctx context.Context, id int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, r.deleteSQL, id)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

var _ repository.RecordRepository[entity.User] = (*RecordRepository[entity.User])(nil)
