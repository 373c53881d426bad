package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/pkg/composables"
)

type UserService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		return s.repo.GetByID(txCtx, id)
	})
}

func (s *UserService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*user.User, error) {
		return s.repo.GetByIDs(txCtx, ids)
	})
}

func (s *UserService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (bool, error) {
		return s.repo.Exists(txCtx, id)
	})
}

func (s *UserService) List(ctx context.Context) ([]*user.User, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*user.User, error) {
		return s.repo.List(txCtx)
	})
}

func (s *UserService) Create(ctx context.Context, data *user.User) (*user.User, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		return s.repo.Create(txCtx, data)
	})
}

func (s *UserService) Update(ctx context.Context, data *user.User) (*user.User, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		return s.repo.Update(txCtx, data)
	})
}
