package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/core/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
)

var (
	ErrRoleNotFound = fmt.Errorf("role not found")
)

const (
	roleFindQuery = `SELECT id, tenant_id, name, description, created_at, updated_at FROM roles`

	roleExistsQuery = `SELECT EXISTS(SELECT 1 FROM roles WHERE id = $1 AND tenant_id = $2)`

	roleInsertQuery = `
		INSERT INTO roles (id, tenant_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	roleUpdateQuery = `
		UPDATE roles
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4 AND tenant_id = $5`
)

type RoleRepository struct{}

func NewRoleRepository() role.Repository {
	return &RoleRepository{}
}

func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*role.Role, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := r.queryRoles(ctx, roleFindQuery+" WHERE id = $1 AND tenant_id = $2", id.String(), tenantID.String())
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, ErrRoleNotFound
	}
	return roles[0], nil
}

func (r *RoleRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*role.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryRoles(ctx, roleFindQuery+" WHERE tenant_id = $1 AND id = ANY($2)", tenantID, ids)
}

func (r *RoleRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return false, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, roleExistsQuery, id.String(), tenantID.String()).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to check role existence")
	}
	return exists, nil
}

func (r *RoleRepository) Create(ctx context.Context, entity *role.Role) (*role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var description sql.NullString
	if entity.Description() != "" {
		description = sql.NullString{String: entity.Description(), Valid: true}
	}
	if _, err := tx.Exec(
		ctx,
		roleInsertQuery,
		entity.ID().String(),
		entity.TenantID().String(),
		entity.Name(),
		description,
		entity.CreatedAt(),
		entity.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert role")
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *RoleRepository) Update(ctx context.Context, entity *role.Role) (*role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var description sql.NullString
	if entity.Description() != "" {
		description = sql.NullString{String: entity.Description(), Valid: true}
	}
	if _, err := tx.Exec(
		ctx,
		roleUpdateQuery,
		entity.Name(),
		description,
		entity.UpdatedAt(),
		entity.ID().String(),
		entity.TenantID().String(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update role")
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *RoleRepository) List(ctx context.Context) ([]*role.Role, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryRoles(ctx, roleFindQuery+" WHERE tenant_id = $1 ORDER BY name", tenantID.String())
}

func (r *RoleRepository) queryRoles(ctx context.Context, query string, args ...interface{}) ([]*role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var roles []*role.Role
	for rows.Next() {
		var m models.Role
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.Name,
			&m.Description,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan role row")
		}
		entity, err := toDomainRole(&m)
		if err != nil {
			return nil, err
		}
		roles = append(roles, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return roles, nil
}
