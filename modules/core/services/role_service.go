package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/pkg/composables"
)

type RoleService struct {
	repo role.Repository
}

func NewRoleService(repo role.Repository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*role.Role, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*role.Role, error) {
		return s.repo.GetByID(txCtx, id)
	})
}

func (s *RoleService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (bool, error) {
		return s.repo.Exists(txCtx, id)
	})
}

func (s *RoleService) List(ctx context.Context) ([]*role.Role, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*role.Role, error) {
		return s.repo.List(txCtx)
	})
}

func (s *RoleService) Create(ctx context.Context, data *role.Role) (*role.Role, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*role.Role, error) {
		return s.repo.Create(txCtx, data)
	})
}

func (s *RoleService) Update(ctx context.Context, data *role.Role) (*role.Role, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*role.Role, error) {
		return s.repo.Update(txCtx, data)
	})
}
