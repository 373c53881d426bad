package persistence

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/repo"
	"github.com/campuskit/campuskit/pkg/serrors"
)

const (
	orgUnitFindQuery = `
		SELECT id, tenant_id, name, code, unit_type, status, parent_id, path,
			sort_order, created_by, updated_by, archived_at, created_at, updated_at
		FROM org_units`

	orgUnitInsertQuery = `
		INSERT INTO org_units (
			id, tenant_id, name, code, unit_type, status, parent_id, path,
			sort_order, created_by, updated_by, archived_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	orgUnitUpdateQuery = `
		UPDATE org_units
		SET name = $1, code = $2, unit_type = $3, status = $4, sort_order = $5,
			updated_by = $6, archived_at = $7, updated_at = $8
		WHERE tenant_id = $9 AND id = $10`

	orgUnitUpdateManyQuery = `
		UPDATE org_units
		SET status = $1, archived_at = $2, updated_by = $3, updated_at = now()
		WHERE tenant_id = $4 AND id = ANY($5)`
)

type OrgUnitRepository struct{}

func NewOrgUnitRepository() orgunit.Repository {
	return &OrgUnitRepository{}
}

func (r *OrgUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*orgunit.OrgUnit, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	units, err := r.queryUnits(ctx, orgUnitFindQuery+" WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, serrors.NewNotFound("org_unit_not_found", "org unit not found").
			WithDetails(map[string]any{"unitId": id.String()})
	}
	return units[0], nil
}

func (r *OrgUnitRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*orgunit.OrgUnit, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryUnits(ctx, orgUnitFindQuery+" WHERE tenant_id = $1 AND id = ANY($2)", tenantID, ids)
}

func (r *OrgUnitRepository) GetAll(ctx context.Context, status *orgunit.Status) ([]*orgunit.OrgUnit, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	query := orgUnitFindQuery + " WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, string(*status))
	}
	query += " ORDER BY sort_order, id"
	return r.queryUnits(ctx, query, args...)
}

func (r *OrgUnitRepository) GetPaginated(ctx context.Context, params *orgunit.FindParams) ([]*orgunit.OrgUnit, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}

	if params.ParentID != nil {
		args = append(args, *params.ParentID)
		where = append(where, "parent_id = $"+strconv.Itoa(len(args)))
	}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if params.Name != "" {
		args = append(args, "%"+params.Name+"%")
		where = append(where, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if params.Cursor != nil {
		args = append(args, *params.Cursor)
		cursorArg := "$" + strconv.Itoa(len(args))
		where = append(where, "(sort_order, id) > (SELECT sort_order, id FROM org_units WHERE tenant_id = $1 AND id = "+cursorArg+")")
	}

	query := repo.Join(
		orgUnitFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY sort_order, id",
		repo.FormatLimitOffset(params.ClampedLimit(), 0),
	)
	return r.queryUnits(ctx, query, args...)
}

func (r *OrgUnitRepository) Create(ctx context.Context, unit *orgunit.OrgUnit) (*orgunit.OrgUnit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		orgUnitInsertQuery,
		unit.ID(),
		unit.TenantID(),
		unit.Name(),
		nullString(unit.Code()),
		string(unit.Type()),
		string(unit.Status()),
		unit.ParentID(),
		unit.Path(),
		unit.SortOrder(),
		unit.CreatedBy(),
		unit.UpdatedBy(),
		nullTime(unit.ArchivedAt()),
		unit.CreatedAt(),
		unit.UpdatedAt(),
	); err != nil {
		return nil, mapPgError(err)
	}
	return r.GetByID(ctx, unit.ID())
}

func (r *OrgUnitRepository) Update(ctx context.Context, unit *orgunit.OrgUnit) (*orgunit.OrgUnit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		orgUnitUpdateQuery,
		unit.Name(),
		nullString(unit.Code()),
		string(unit.Type()),
		string(unit.Status()),
		unit.SortOrder(),
		unit.UpdatedBy(),
		nullTime(unit.ArchivedAt()),
		unit.UpdatedAt(),
		unit.TenantID(),
		unit.ID(),
	); err != nil {
		return nil, mapPgError(err)
	}
	return r.GetByID(ctx, unit.ID())
}

// UpdateMany applies the cascade patch to the whole id set in one
// statement.
func (r *OrgUnitRepository) UpdateMany(ctx context.Context, ids []uuid.UUID, patch orgunit.UpdateManyPatch) error {
	if len(ids) == 0 {
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
	if _, err := tx.Exec(
		ctx,
		orgUnitUpdateManyQuery,
		string(patch.Status),
		nullTime(patch.ArchivedAt),
		patch.UpdatedBy,
		tenantID,
		ids,
	); err != nil {
		return mapPgError(err)
	}
	return nil
}

// FindDescendants returns every unit whose path contains the given id,
// i.e. the full subtree below it, unordered beyond the stable sort.
func (r *OrgUnitRepository) FindDescendants(ctx context.Context, unitID uuid.UUID) ([]*orgunit.OrgUnit, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryUnits(
		ctx,
		orgUnitFindQuery+" WHERE tenant_id = $1 AND $2 = ANY(path) ORDER BY sort_order, id",
		tenantID,
		unitID,
	)
}

func (r *OrgUnitRepository) queryUnits(ctx context.Context, query string, args ...interface{}) ([]*orgunit.OrgUnit, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var units []*orgunit.OrgUnit
	for rows.Next() {
		var m models.OrgUnit
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.Name,
			&m.Code,
			&m.UnitType,
			&m.Status,
			&m.ParentID,
			&m.Path,
			&m.SortOrder,
			&m.CreatedBy,
			&m.UpdatedBy,
			&m.ArchivedAt,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan org unit row")
		}
		entity, err := toDomainOrgUnit(&m)
		if err != nil {
			return nil, err
		}
		units = append(units, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return units, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
