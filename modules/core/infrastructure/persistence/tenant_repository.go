package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/entities/tenant"
	"github.com/campuskit/campuskit/modules/core/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
)

var (
	ErrTenantNotFound = fmt.Errorf("tenant not found")
)

const (
	tenantFindQuery = `SELECT id, name, domain, is_active, created_at, updated_at FROM tenants`

	tenantInsertQuery = `
		INSERT INTO tenants (id, name, domain, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	tenantUpdateQuery = `
		UPDATE tenants
		SET name = $1, domain = $2, is_active = $3, updated_at = $4
		WHERE id = $5`
)

type TenantRepository struct{}

func NewTenantRepository() tenant.Repository {
	return &TenantRepository{}
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	tenants, err := r.queryTenants(ctx, tenantFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}
	return tenants[0], nil
}

func (r *TenantRepository) GetByDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	tenants, err := r.queryTenants(ctx, tenantFindQuery+" WHERE domain = $1", strings.ToLower(domain))
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}
	return tenants[0], nil
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	domain := strings.ToLower(strings.TrimSpace(t.Domain()))
	if _, err := tx.Exec(
		ctx,
		tenantInsertQuery,
		t.ID().String(),
		t.Name(),
		domain,
		t.IsActive(),
		t.CreatedAt(),
		t.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert tenant")
	}
	return r.GetByID(ctx, t.ID())
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	domain := strings.ToLower(strings.TrimSpace(t.Domain()))
	if _, err := tx.Exec(
		ctx,
		tenantUpdateQuery,
		t.Name(),
		domain,
		t.IsActive(),
		t.UpdatedAt(),
		t.ID().String(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update tenant")
	}
	return r.GetByID(ctx, t.ID())
}

func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	return r.queryTenants(ctx, tenantFindQuery+" ORDER BY name")
}

func (r *TenantRepository) queryTenants(ctx context.Context, query string, args ...interface{}) ([]*tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var tenants []*tenant.Tenant
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Domain,
			&t.IsActive,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan tenant row")
		}
		entity, err := toDomainTenant(&t)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return tenants, nil
}
