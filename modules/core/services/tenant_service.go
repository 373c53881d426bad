package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/entities/tenant"
	"github.com/campuskit/campuskit/pkg/composables"
)

type TenantService struct {
	repo tenant.Repository
}

func NewTenantService(repo tenant.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TenantService) GetByDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	return s.repo.GetByDomain(ctx, domain)
}

func (s *TenantService) List(ctx context.Context) ([]*tenant.Tenant, error) {
	return s.repo.List(ctx)
}

func (s *TenantService) Create(ctx context.Context, data *tenant.Tenant) (*tenant.Tenant, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*tenant.Tenant, error) {
		return s.repo.Create(txCtx, data)
	})
}

func (s *TenantService) Update(ctx context.Context, data *tenant.Tenant) (*tenant.Tenant, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*tenant.Tenant, error) {
		return s.repo.Update(txCtx, data)
	})
}
