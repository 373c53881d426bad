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
	memberListQuery = `
		SELECT m.user_id, m.org_unit_id,
			trim(u.first_name || ' ' || u.last_name) AS name,
			u.email,
			CASE WHEN u.is_active THEN 'active' ELSE 'inactive' END AS status,
			u.avatar_url, m.role_in_unit, m.created_at
		FROM org_unit_members m
		JOIN users u ON u.id = m.user_id AND u.tenant_id = m.tenant_id
		WHERE m.tenant_id = $1 AND m.org_unit_id = ANY($2)
		ORDER BY name, m.user_id`

	memberCountQuery = `
		SELECT COUNT(*) FROM org_unit_members
		WHERE tenant_id = $1 AND org_unit_id = ANY($2)`

	memberUpsertPrefix = `
		INSERT INTO org_unit_members (tenant_id, org_unit_id, user_id, role_in_unit, created_by)
		VALUES `

	memberUpsertSuffix = ` ON CONFLICT (tenant_id, org_unit_id, user_id) DO NOTHING`

	memberDeleteQuery = `
		DELETE FROM org_unit_members
		WHERE tenant_id = $1 AND org_unit_id = $2 AND user_id = $3`

	memberDeleteByUnitsQuery = `
		DELETE FROM org_unit_members
		WHERE tenant_id = $1 AND org_unit_id = ANY($2)`
)

type OrgUnitMemberRepository struct{}

func NewOrgUnitMemberRepository() orgunit.MemberRepository {
	return &OrgUnitMemberRepository{}
}

func (r *OrgUnitMemberRepository) ListByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) ([]*orgunit.MemberView, error) {
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

	rows, err := tx.Query(ctx, memberListQuery, tenantID, unitIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list org unit members")
	}
	defer rows.Close()

	var views []*orgunit.MemberView
	for rows.Next() {
		var m models.OrgUnitMemberView
		if err := rows.Scan(
			&m.UserID,
			&m.OrgUnitID,
			&m.Name,
			&m.Email,
			&m.Status,
			&m.AvatarURL,
			&m.RoleInUnit,
			&m.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan member row")
		}
		views = append(views, toDomainMemberView(&m))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return views, nil
}

func (r *OrgUnitMemberRepository) CountByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) (int, error) {
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
	if err := tx.QueryRow(ctx, memberCountQuery, tenantID, unitIDs).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count org unit members")
	}
	return count, nil
}

func (r *OrgUnitMemberRepository) AddMembers(ctx context.Context, unitID uuid.UUID, members []orgunit.AddMember, createdBy *uuid.UUID) error {
	if len(members) == 0 {
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
	args := make([]interface{}, 0, len(members)*5)
	for _, member := range members {
		args = append(args, tenantID, unitID, member.UserID, member.RoleInUnit, createdBy)
	}
	query := memberUpsertPrefix + repo.BatchPlaceholders(len(members), 5) + memberUpsertSuffix
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *OrgUnitMemberRepository) RemoveMember(ctx context.Context, unitID, userID uuid.UUID) error {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, memberDeleteQuery, tenantID, unitID, userID); err != nil {
		return errors.Wrap(err, "failed to remove org unit member")
	}
	return nil
}

func (r *OrgUnitMemberRepository) RemoveByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) error {
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
	if _, err := tx.Exec(ctx, memberDeleteByUnitsQuery, tenantID, unitIDs); err != nil {
		return errors.Wrap(err, "failed to remove members by org unit ids")
	}
	return nil
}
