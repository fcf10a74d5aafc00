package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-records/internal/domain/repository"
	"github.com/oksasatya/go-ddd-records/pkg/helpers"
)

// RecordService exposes create/list/get/update/delete for one record type.
// Inputs are assumed shape-validated by the caller.
type RecordService[T any] struct {
	Repo   repo.RecordRepository[T]
	Schema entity.Schema[T]
	Logger *logrus.Logger
}

func NewRecordService[T any](r repo.RecordRepository[T], schema entity.Schema[T], logger *logrus.Logger) *RecordService[T] {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &RecordService[T]{Repo: r, Schema: schema, Logger: logger}
}

func (s *RecordService[T]) log(id int64) *logrus.Entry {
	fields := logrus.Fields{"entity": s.Schema.Path}
	if id != 0 {
		fields["id"] = id
	}
	return s.Logger.WithFields(fields)
}

// Create stores in and returns the stored record with its new id.
func (s *RecordService[T]) Create(ctx context.Context, in T) (*T, error) {
	rec := in
	*s.Schema.ID(&rec) = 0
	if err := s.Repo.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.Schema.Path, err)
	}
	id := *s.Schema.ID(&rec)
	s.log(id).Debug("record created")
	return &rec, nil
}

func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	recs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Schema.Path, err)
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

func (s *RecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap("get", id, err)
	}
	return rec, nil
}

// Update overwrites every mutable field of record id with those of in.
func (s *RecordService[T]) Update(ctx context.Context, id int64, in T) (*T, error) {
	rec := in
	*s.Schema.ID(&rec) = id
	if err := s.Repo.Update(ctx, id, &rec); err != nil {
		return nil, s.wrap("update", id, err)
	}
	s.log(id).Debug("record updated")
	return &rec, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return s.wrap("delete", id, err)
	}
	s.log(id).Debug("record deleted")
	return nil
}

func (s *RecordService[T]) wrap(op string, id int64, err error) error {
	if !errors.Is(err, repo.ErrNotFound) {
		s.log(id).WithError(err).Warn(op + " failed")
	}
	return fmt.Errorf("%s %s %d: %w", op, s.Schema.Path, id, err)
}
