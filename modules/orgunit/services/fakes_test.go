package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/pkg/serrors"
)

// nopTx satisfies pgx.Tx so tests can join the transaction composables
// without a database. No method is ever called on it.
type nopTx struct{ pgx.Tx }

type fakeUnitRepo struct {
	units map[uuid.UUID]*orgunit.OrgUnit
	order []uuid.UUID
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[uuid.UUID]*orgunit.OrgUnit)}
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id uuid.UUID) (*orgunit.OrgUnit, error) {
	unit, ok := r.units[id]
	if !ok {
		return nil, serrors.NewNotFound("org_unit_not_found", "org unit not found").
			WithDetails(map[string]any{"unitId": id.String()})
	}
	return unit, nil
}

func (r *fakeUnitRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*orgunit.OrgUnit, error) {
	var out []*orgunit.OrgUnit
	for _, id := range ids {
		if unit, ok := r.units[id]; ok {
			out = append(out, unit)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) GetAll(_ context.Context, status *orgunit.Status) ([]*orgunit.OrgUnit, error) {
	var out []*orgunit.OrgUnit
	for _, id := range r.order {
		unit := r.units[id]
		if status != nil && unit.Status() != *status {
			continue
		}
		out = append(out, unit)
	}
	return out, nil
}

func (r *fakeUnitRepo) GetPaginated(_ context.Context, params *orgunit.FindParams) ([]*orgunit.OrgUnit, error) {
	var all []*orgunit.OrgUnit
	for _, id := range r.order {
		unit := r.units[id]
		if params.ParentID != nil {
			if unit.ParentID() == nil || *unit.ParentID() != *params.ParentID {
				continue
			}
		}
		if params.Status != nil && unit.Status() != *params.Status {
			continue
		}
		if params.Name != "" && !strings.Contains(strings.ToLower(unit.Name()), strings.ToLower(params.Name)) {
			continue
		}
		all = append(all, unit)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].SortOrder() != all[j].SortOrder() {
			return all[i].SortOrder() < all[j].SortOrder()
		}
		return all[i].ID().String() < all[j].ID().String()
	})
	if params.Cursor != nil {
		for i, unit := range all {
			if unit.ID() == *params.Cursor {
				all = all[i+1:]
				break
			}
		}
	}
	limit := params.ClampedLimit()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeUnitRepo) Create(_ context.Context, unit *orgunit.OrgUnit) (*orgunit.OrgUnit, error) {
	r.units[unit.ID()] = unit
	r.order = append(r.order, unit.ID())
	return unit, nil
}

func (r *fakeUnitRepo) Update(_ context.Context, unit *orgunit.OrgUnit) (*orgunit.OrgUnit, error) {
	if _, ok := r.units[unit.ID()]; !ok {
		return nil, serrors.NewNotFound("org_unit_not_found", "org unit not found")
	}
	r.units[unit.ID()] = unit
	return unit, nil
}

func (r *fakeUnitRepo) UpdateMany(_ context.Context, ids []uuid.UUID, patch orgunit.UpdateManyPatch) error {
	for _, id := range ids {
		unit, ok := r.units[id]
		if !ok {
			continue
		}
		if patch.Status == orgunit.StatusArchived {
			at := time.Now()
			if patch.ArchivedAt != nil {
				at = *patch.ArchivedAt
			}
			unit.Archive(at, patch.UpdatedBy)
		} else {
			unit.Restore(patch.UpdatedBy)
		}
	}
	return nil
}

func (r *fakeUnitRepo) FindDescendants(_ context.Context, unitID uuid.UUID) ([]*orgunit.OrgUnit, error) {
	var out []*orgunit.OrgUnit
	for _, id := range r.order {
		unit, ok := r.units[id]
		if !ok {
			continue
		}
		if unit.InPath(unitID) {
			out = append(out, unit)
		}
	}
	return out, nil
}

type memberRow struct {
	unitID     uuid.UUID
	userID     uuid.UUID
	roleInUnit *string
	createdAt  time.Time
}

type fakeMemberRepo struct {
	rows  []memberRow
	users *fakeUserRepo
}

func newFakeMemberRepo(users *fakeUserRepo) *fakeMemberRepo {
	return &fakeMemberRepo{users: users}
}

func (r *fakeMemberRepo) ListByUnitIDs(_ context.Context, unitIDs []uuid.UUID) ([]*orgunit.MemberView, error) {
	wanted := idSet(unitIDs)
	var out []*orgunit.MemberView
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; !ok {
			continue
		}
		view := &orgunit.MemberView{
			UserID:     row.userID,
			OrgUnitID:  row.unitID,
			RoleInUnit: row.roleInUnit,
			CreatedAt:  row.createdAt,
		}
		if u, ok := r.users.byID[row.userID]; ok {
			view.Name = u.FullName()
			view.Email = u.Email()
			if u.IsActive() {
				view.Status = "active"
			} else {
				view.Status = "inactive"
			}
			view.AvatarURL = u.AvatarURL()
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeMemberRepo) CountByUnitIDs(_ context.Context, unitIDs []uuid.UUID) (int, error) {
	wanted := idSet(unitIDs)
	count := 0
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; ok {
			count++
		}
	}
	return count, nil
}

func (r *fakeMemberRepo) AddMembers(_ context.Context, unitID uuid.UUID, members []orgunit.AddMember, _ *uuid.UUID) error {
	for _, member := range members {
		exists := false
		for _, row := range r.rows {
			if row.unitID == unitID && row.userID == member.UserID {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		r.rows = append(r.rows, memberRow{
			unitID:     unitID,
			userID:     member.UserID,
			roleInUnit: member.RoleInUnit,
			createdAt:  time.Now(),
		})
	}
	return nil
}

func (r *fakeMemberRepo) RemoveMember(_ context.Context, unitID, userID uuid.UUID) error {
	out := r.rows[:0]
	for _, row := range r.rows {
		if row.unitID == unitID && row.userID == userID {
			continue
		}
		out = append(out, row)
	}
	r.rows = out
	return nil
}

func (r *fakeMemberRepo) RemoveByUnitIDs(_ context.Context, unitIDs []uuid.UUID) error {
	wanted := idSet(unitIDs)
	out := r.rows[:0]
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; ok {
			continue
		}
		out = append(out, row)
	}
	r.rows = out
	return nil
}

type assignmentRow struct {
	unitID    uuid.UUID
	roleID    uuid.UUID
	scope     orgunit.Scope
	createdAt time.Time
}

type fakeAssignmentRepo struct {
	rows  []assignmentRow
	roles *fakeRoleRepo
}

func newFakeAssignmentRepo(roles *fakeRoleRepo) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{roles: roles}
}

func (r *fakeAssignmentRepo) ListByUnitIDs(_ context.Context, unitIDs []uuid.UUID) ([]*orgunit.RoleAssignmentView, error) {
	wanted := idSet(unitIDs)
	var out []*orgunit.RoleAssignmentView
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; !ok {
			continue
		}
		view := &orgunit.RoleAssignmentView{
			RoleID:    row.roleID,
			OrgUnitID: row.unitID,
			Scope:     row.scope,
			CreatedAt: row.createdAt,
		}
		if role, ok := r.roles.byID[row.roleID]; ok {
			view.RoleName = role.Name()
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) CountByUnitIDs(_ context.Context, unitIDs []uuid.UUID) (int, error) {
	wanted := idSet(unitIDs)
	count := 0
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; ok {
			count++
		}
	}
	return count, nil
}

func (r *fakeAssignmentRepo) AddAssignments(_ context.Context, unitID uuid.UUID, roleIDs []uuid.UUID, scope orgunit.Scope, _ *uuid.UUID) error {
	for _, roleID := range roleIDs {
		replaced := false
		for i := range r.rows {
			if r.rows[i].unitID == unitID && r.rows[i].roleID == roleID {
				r.rows[i].scope = scope
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}
		r.rows = append(r.rows, assignmentRow{
			unitID:    unitID,
			roleID:    roleID,
			scope:     scope,
			createdAt: time.Now(),
		})
	}
	return nil
}

func (r *fakeAssignmentRepo) RemoveAssignment(_ context.Context, unitID, roleID uuid.UUID) error {
	out := r.rows[:0]
	for _, row := range r.rows {
		if row.unitID == unitID && row.roleID == roleID {
			continue
		}
		out = append(out, row)
	}
	r.rows = out
	return nil
}

func (r *fakeAssignmentRepo) RemoveByUnitIDs(_ context.Context, unitIDs []uuid.UUID) error {
	wanted := idSet(unitIDs)
	out := r.rows[:0]
	for _, row := range r.rows {
		if _, ok := wanted[row.unitID]; ok {
			continue
		}
		out = append(out, row)
	}
	r.rows = out
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, serrors.NewNotFound("user_not_found", "user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	r.byID[u.ID()] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	r.byID[u.ID()] = u
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*user.User, error) {
	var out []*user.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

type fakeRoleRepo struct {
	byID map[uuid.UUID]*role.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{byID: make(map[uuid.UUID]*role.Role)}
}

func (r *fakeRoleRepo) GetByID(_ context.Context, id uuid.UUID) (*role.Role, error) {
	entity, ok := r.byID[id]
	if !ok {
		return nil, serrors.NewNotFound("role_not_found", "role not found")
	}
	return entity, nil
}

func (r *fakeRoleRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*role.Role, error) {
	var out []*role.Role
	for _, id := range ids {
		if entity, ok := r.byID[id]; ok {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeRoleRepo) Create(_ context.Context, entity *role.Role) (*role.Role, error) {
	r.byID[entity.ID()] = entity
	return entity, nil
}

func (r *fakeRoleRepo) Update(_ context.Context, entity *role.Role) (*role.Role, error) {
	r.byID[entity.ID()] = entity
	return entity, nil
}

func (r *fakeRoleRepo) List(_ context.Context) ([]*role.Role, error) {
	var out []*role.Role
	for _, entity := range r.byID {
		out = append(out, entity)
	}
	return out, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
