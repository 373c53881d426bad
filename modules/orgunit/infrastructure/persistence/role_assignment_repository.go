package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/repo"
)

const (
	roleAssignmentListQuery = `
		SELECT a.role_id, a.org_unit_id, r.name, a.scope, a.created_at
		FROM org_unit_role_assignments a
		JOIN roles r ON r.id = a.role_id AND r.tenant_id = a.tenant_id
		WHERE a.tenant_id = $1 AND a.org_unit_id = ANY($2)
		ORDER BY r.name, a.role_id`

	roleAssignmentCountQuery = `
		SELECT COUNT(*) FROM org_unit_role_assignments
		WHERE tenant_id = $1 AND org_unit_id = ANY($2)`

	roleAssignmentUpsertPrefix = `
		INSERT INTO org_unit_role_assignments (tenant_id, org_unit_id, role_id, scope, created_by)
		VALUES `

	roleAssignmentUpsertSuffix = ` ON CONFLICT (tenant_id, org_unit_id, role_id) DO UPDATE SET scope = EXCLUDED.scope`

	roleAssignmentDeleteQuery = `
		DELETE FROM org_unit_role_assignments
		WHERE tenant_id = $1 AND org_unit_id = $2 AND role_id = $3`

	roleAssignmentDeleteByUnitsQuery = `
		DELETE FROM org_unit_role_assignments
		WHERE tenant_id = $1 AND org_unit_id = ANY($2)`
)

type OrgUnitRoleAssignmentRepository struct{}

func NewOrgUnitRoleAssignmentRepository() orgunit.RoleAssignmentRepository {
	return &OrgUnitRoleAssignmentRepository{}
}

func (r *OrgUnitRoleAssignmentRepository) ListByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) ([]*orgunit.RoleAssignmentView, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, roleAssignmentListQuery, tenantID, unitIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}
	defer rows.Close()

	var views []*orgunit.RoleAssignmentView
	for rows.Next() {
		var m models.OrgUnitRoleAssignmentView
		if err := rows.Scan(
			&m.RoleID,
			&m.OrgUnitID,
			&m.RoleName,
			&m.Scope,
			&m.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan role assignment row")
		}
		views = append(views, toDomainRoleAssignmentView(&m))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return views, nil
}

func (r *OrgUnitRoleAssignmentRepository) CountByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) (int, error) {
	if len(unitIDs) == 0 {
		return 0, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return 0, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int
	if err := tx.QueryRow(ctx, roleAssignmentCountQuery, tenantID, unitIDs).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count role assignments")
	}
	return count, nil
}

func (r *OrgUnitRoleAssignmentRepository) AddAssignments(ctx context.Context, unitID uuid.UUID, roleIDs []uuid.UUID, scope orgunit.Scope, createdBy *uuid.UUID) error {
	if len(roleIDs) == 0 {
		return nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	args := make([]interface{}, 0, len(roleIDs)*5)
	for _, roleID := range roleIDs {
		args = append(args, tenantID, unitID, roleID, string(scope), createdBy)
	}
	query := roleAssignmentUpsertPrefix + repo.BatchPlaceholders(len(roleIDs), 5) + roleAssignmentUpsertSuffix
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *OrgUnitRoleAssignmentRepository) RemoveAssignment(ctx context.Context, unitID, roleID uuid.UUID) error {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, roleAssignmentDeleteQuery, tenantID, unitID, roleID); err != nil {
		return errors.Wrap(err, "failed to remove role assignment")
	}
	return nil
}

func (r *OrgUnitRoleAssignmentRepository) RemoveByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) error {
	if len(unitIDs) == 0 {
		return nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, roleAssignmentDeleteByUnitsQuery, tenantID, unitIDs); err != nil {
		return errors.Wrap(err, "failed to remove role assignments by org unit ids")
	}
	return nil
}
