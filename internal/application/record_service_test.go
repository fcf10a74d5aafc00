package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
	"github.com/oksasatya/go-ddd-records/internal/domain/repository"
)

type stubRoleRepo struct {
	created entity.Role
	updated *entity.Role
	list    []entity.Role
	err     error
}

func (s *stubRoleRepo) Create(ctx context.Context, rec *entity.Role) error {
	if s.err != nil {
		return s.err
	}
	s.created = *rec
	rec.ID = 11
	return nil
}

func (s *stubRoleRepo) List(ctx context.Context) ([]entity.Role, error) {
	return s.list, s.err
}

func (s *stubRoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Role{ID: id, Name: "admin"}, nil
}

func (s *stubRoleRepo) Update(ctx context.Context, id int64, rec *entity.Role) error {
	if s.err != nil {
		return s.err
	}
	s.updated = rec
	return nil
}

func (s *stubRoleRepo) Delete(ctx context.Context, id int64) error {
	return s.err
}

func TestRecordServiceCreateIgnoresInputID(t *testing.T) {
	stub := &stubRoleRepo{}
	svc := NewRecordService[entity.Role](stub, entity.RoleSchema, nil)

	role, err := svc.Create(context.Background(), entity.Role{ID: 99, Name: "admin"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stub.created.ID, "id must not reach the store")
	assert.Equal(t, &entity.Role{ID: 11, Name: "admin"}, role)
}

func TestRecordServiceUpdateUsesPathID(t *testing.T) {
	stub := &stubRoleRepo{}
	svc := NewRecordService[entity.Role](stub, entity.RoleSchema, nil)

	role, err := svc.Update(context.Background(), 4, entity.Role{ID: 99, Name: "ops"})
	require.NoError(t, err)
	assert.Equal(t, &entity.Role{ID: 4, Name: "ops"}, role)
	assert.Equal(t, int64(4), stub.updated.ID)
}

func TestRecordServiceListNeverNil(t *testing.T) {
	svc := NewRecordService[entity.Role](&stubRoleRepo{}, entity.RoleSchema, nil)

	roles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}

func TestRecordServiceNotFoundIsWrapped(t *testing.T) {
	svc := NewRecordService[entity.Role](&stubRoleRepo{err: repository.ErrNotFound}, entity.RoleSchema, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "role 999")

	_, err = svc.Update(ctx, 999, entity.Role{Name: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), repository.ErrNotFound)
}

func TestRecordServiceStoreErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	svc := NewRecordService[entity.Role](&stubRoleRepo{err: boom}, entity.RoleSchema, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, entity.Role{Name: "x"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, boom)
}
