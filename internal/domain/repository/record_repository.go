package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("not found")

// RecordRepository defines the persistence operations shared by every record type.
// Create and Update overwrite rec with the stored row, including the id.
type RecordRepository[T any] interface {
	Create(ctx context.Context, rec *T) error
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}
