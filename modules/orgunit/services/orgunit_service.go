package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/eventbus"
	"github.com/campuskit/campuskit/pkg/serrors"
)

// namePreviewLimit caps the unit-name preview returned by delete
// impact.
const namePreviewLimit = 10

// OrgUnitService implements the tree operations over the org unit
// repositories. User and role repositories are consulted only for
// existence validation before add operations.
type OrgUnitService struct {
	repo        orgunit.Repository
	members     orgunit.MemberRepository
	assignments orgunit.RoleAssignmentRepository
	users       user.Repository
	roles       role.Repository
	publisher   eventbus.EventBus
}

func NewOrgUnitService(
	repo orgunit.Repository,
	members orgunit.MemberRepository,
	assignments orgunit.RoleAssignmentRepository,
	users user.Repository,
	roles role.Repository,
	publisher eventbus.EventBus,
) *OrgUnitService {
	return &OrgUnitService{
		repo:        repo,
		members:     members,
		assignments: assignments,
		users:       users,
		roles:       roles,
		publisher:   publisher,
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	id, err := composables.UseActorID(ctx)
	if err != nil {
		return nil
	}
	return &id
}

// publish stamps the request origin on the event before handing it to
// the bus. Events raised outside a request (seeds, CLI) carry none.
func (s *OrgUnitService) publish(ctx context.Context, event *orgunit.Event) {
	if ip, ok := composables.UseIP(ctx); ok {
		event.IP = ip
	}
	if agent, ok := composables.UseUserAgent(ctx); ok {
		event.UserAgent = agent
	}
	s.publisher.Publish(event)
}

// Create assigns the materialized path server-side from the parent
// snapshot. Caller-supplied paths are never trusted.
func (s *OrgUnitService) Create(ctx context.Context, cmd CreateOrgUnitCommand) (*orgunit.OrgUnit, error) {
	actor := actorID(ctx)
	created, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		tenantID, err := composables.UseTenantID(txCtx)
		if err != nil {
			return nil, err
		}
		unitType, err := orgunit.ParseType(cmd.Type)
		if err != nil {
			return nil, err
		}
		status, err := orgunit.ParseStatus(cmd.Status)
		if err != nil {
			return nil, err
		}

		var path []uuid.UUID
		if cmd.ParentID != nil {
			parent, err := s.repo.GetByID(txCtx, *cmd.ParentID)
			if err != nil {
				return nil, err
			}
			if parent.Status() != orgunit.StatusActive {
				return nil, serrors.NewValidation("org_unit_parent_inactive", "parent unit is not active").
					WithDetails(map[string]any{"parentId": parent.ID().String()})
			}
			if parent.InPath(parent.ID()) {
				return nil, serrors.NewValidation("org_unit_cyclic_path", "parent unit has a corrupted path").
					WithDetails(map[string]any{"parentId": parent.ID().String()})
			}
			path = append(append(path, parent.Path()...), parent.ID())
		}

		unit, err := orgunit.New(
			tenantID,
			cmd.Name,
			orgunit.WithCode(cmd.Code),
			orgunit.WithType(unitType),
			orgunit.WithParentID(cmd.ParentID),
			orgunit.WithPath(path),
			orgunit.WithSortOrder(cmd.SortOrder),
			orgunit.WithCreatedBy(actor),
			orgunit.WithUpdatedBy(actor),
		)
		if err != nil {
			return nil, err
		}
		if status == orgunit.StatusArchived {
			unit.Archive(time.Now(), actor)
		}
		return s.repo.Create(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionCreated).Inc()
	s.publish(ctx, orgunit.NewCreatedEvent(created, actor))
	return created, nil
}

func (s *OrgUnitService) Update(ctx context.Context, id uuid.UUID, cmd UpdateOrgUnitCommand) (*orgunit.OrgUnit, error) {
	actor := actorID(ctx)
	var before map[string]any
	updated, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return nil, err
		}
		before = orgunit.Snapshot(unit)

		if cmd.Name != nil {
			if err := unit.SetName(*cmd.Name); err != nil {
				return nil, err
			}
		}
		if cmd.Code != nil {
			unit.SetCode(cmd.Code)
		}
		if cmd.Type != nil {
			unitType, err := orgunit.ParseType(*cmd.Type)
			if err != nil {
				return nil, err
			}
			unit.SetType(unitType)
		}
		if cmd.SortOrder != nil {
			unit.SetSortOrder(*cmd.SortOrder)
		}
		if cmd.Status != nil {
			status, err := orgunit.ParseStatus(*cmd.Status)
			if err != nil {
				return nil, err
			}
			if status != unit.Status() {
				if status == orgunit.StatusArchived {
					unit.Archive(time.Now(), actor)
				} else {
					unit.Restore(actor)
				}
			}
		}
		unit.SetUpdatedBy(actor)
		return s.repo.Update(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionUpdated).Inc()
	s.publish(ctx, orgunit.NewUpdatedEvent(updated, actor, before))
	return updated, nil
}

// GetByID resolves the breadcrumb from the unit's own path, dropping
// ancestors that no longer resolve instead of failing the call.
func (s *OrgUnitService) GetByID(ctx context.Context, id uuid.UUID) (*OrgUnitDetail, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*OrgUnitDetail, error) {
		unit, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return nil, err
		}

		var breadcrumb []BreadcrumbEntry
		if len(unit.Path()) > 0 {
			ancestors, err := s.repo.GetByIDs(txCtx, unit.Path())
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]*orgunit.OrgUnit, len(ancestors))
			for _, ancestor := range ancestors {
				byID[ancestor.ID()] = ancestor
			}
			for _, ancestorID := range unit.Path() {
				if ancestor, ok := byID[ancestorID]; ok {
					breadcrumb = append(breadcrumb, BreadcrumbEntry{ID: ancestor.ID(), Name: ancestor.Name()})
				}
			}
		}

		descendants, err := s.repo.FindDescendants(txCtx, id)
		if err != nil {
			return nil, err
		}
		childCount := 0
		for _, descendant := range descendants {
			if descendant.ParentID() != nil && *descendant.ParentID() == id {
				childCount++
			}
		}

		membersCount, err := s.members.CountByUnitIDs(txCtx, []uuid.UUID{id})
		if err != nil {
			return nil, err
		}
		rolesCount, err := s.assignments.CountByUnitIDs(txCtx, []uuid.UUID{id})
		if err != nil {
			return nil, err
		}

		return &OrgUnitDetail{
			Unit:         unit,
			Breadcrumb:   breadcrumb,
			ChildCount:   childCount,
			MembersCount: membersCount,
			RolesCount:   rolesCount,
		}, nil
	})
}

// GetTree returns every tenant unit with a per-unit childCount computed
// in a single pass over the result set.
func (s *OrgUnitService) GetTree(ctx context.Context, status *orgunit.Status) ([]*TreeItem, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*TreeItem, error) {
		units, err := s.repo.GetAll(txCtx, status)
		if err != nil {
			return nil, err
		}
		childCounts := make(map[uuid.UUID]int, len(units))
		for _, unit := range units {
			if unit.ParentID() != nil {
				childCounts[*unit.ParentID()]++
			}
		}
		items := make([]*TreeItem, 0, len(units))
		for _, unit := range units {
			items = append(items, &TreeItem{Unit: unit, ChildCount: childCounts[unit.ID()]})
		}
		return items, nil
	})
}

func (s *OrgUnitService) List(ctx context.Context, params *orgunit.FindParams) ([]*orgunit.OrgUnit, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*orgunit.OrgUnit, error) {
		return s.repo.GetPaginated(txCtx, params)
	})
}

// ListMembers resolves membership over the subtree rooted at the unit:
// the unit itself plus its descendants. A member stored on an ancestor
// is never surfaced here; visibility flows downward from where the
// membership was granted.
func (s *OrgUnitService) ListMembers(ctx context.Context, unitID uuid.UUID, search string, includeInherited bool) ([]*orgunit.MemberView, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*orgunit.MemberView, error) {
		if _, err := s.repo.GetByID(txCtx, unitID); err != nil {
			return nil, err
		}
		unitIDs := []uuid.UUID{unitID}
		if includeInherited {
			descendants, err := s.repo.FindDescendants(txCtx, unitID)
			if err != nil {
				return nil, err
			}
			for _, descendant := range descendants {
				unitIDs = append(unitIDs, descendant.ID())
			}
		}
		views, err := s.members.ListByUnitIDs(txCtx, unitIDs)
		if err != nil {
			return nil, err
		}
		for _, view := range views {
			view.Inherited = view.OrgUnitID != unitID
		}
		if search = strings.TrimSpace(search); search != "" {
			needle := strings.ToLower(search)
			filtered := views[:0]
			for _, view := range views {
				haystack := strings.ToLower(view.Name + " " + view.Email)
				if strings.Contains(haystack, needle) {
					filtered = append(filtered, view)
				}
			}
			views = filtered
		}
		return views, nil
	})
}

// AddMembers validates the whole batch before writing anything: any
// user id that does not resolve in the tenant fails the call with the
// offending ids listed.
func (s *OrgUnitService) AddMembers(ctx context.Context, unitID uuid.UUID, cmd AddMembersCommand) error {
	actor := actorID(ctx)
	members := dedupeMembers(cmd.Members)
	if len(members) == 0 {
		return serrors.NewValidation("org_unit_member_ids_required", "at least one userId required")
	}

	unit, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		userIDs := make([]uuid.UUID, 0, len(members))
		for _, member := range members {
			userIDs = append(userIDs, member.UserID)
		}
		found, err := s.users.GetByIDs(txCtx, userIDs)
		if err != nil {
			return nil, err
		}
		if missing := missingIDs(userIDs, userKeys(found)); len(missing) > 0 {
			return nil, serrors.NewValidation("org_unit_unknown_users", "unknown user ids").
				WithDetails(map[string]any{"userIds": uuidsToStrings(missing)})
		}
		if err := s.members.AddMembers(txCtx, unitID, members, actor); err != nil {
			return nil, err
		}
		return unit, nil
	})
	if err != nil {
		return err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionMembersAdded).Inc()
	userIDs := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		userIDs = append(userIDs, member.UserID)
	}
	s.publish(ctx, orgunit.NewMembersAddedEvent(unit, actor, userIDs))
	return nil
}

// RemoveMember is idempotent: removing an association that does not
// exist is not an error.
func (s *OrgUnitService) RemoveMember(ctx context.Context, unitID, userID uuid.UUID) error {
	actor := actorID(ctx)
	unit, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		return unit, s.members.RemoveMember(txCtx, unitID, userID)
	})
	if err != nil {
		return err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionMemberRemoved).Inc()
	s.publish(ctx, orgunit.NewMemberRemovedEvent(unit, actor, userID))
	return nil
}

// ListRoles resolves role inheritance from the unit's own ancestor
// path: ancestor assignments propagate only with the inherits-down
// scope, and a descendant's assignment never surfaces at an ancestor.
func (s *OrgUnitService) ListRoles(ctx context.Context, unitID uuid.UUID, includeInherited bool) ([]*orgunit.RoleAssignmentView, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]*orgunit.RoleAssignmentView, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		views, err := s.assignments.ListByUnitIDs(txCtx, []uuid.UUID{unitID})
		if err != nil {
			return nil, err
		}
		if includeInherited && len(unit.Path()) > 0 {
			ancestorViews, err := s.assignments.ListByUnitIDs(txCtx, unit.Path())
			if err != nil {
				return nil, err
			}
			for _, view := range ancestorViews {
				if view.Scope != orgunit.ScopeInheritsDown {
					continue
				}
				view.Inherited = true
				views = append(views, view)
			}
		}
		return views, nil
	})
}

func (s *OrgUnitService) AssignRoles(ctx context.Context, unitID uuid.UUID, cmd AssignRolesCommand) error {
	actor := actorID(ctx)
	scope, err := orgunit.ParseScope(cmd.Scope)
	if err != nil {
		return err
	}
	roleIDs := dedupeIDs(cmd.RoleIDs)
	if len(roleIDs) == 0 {
		return serrors.NewValidation("org_unit_role_ids_required", "at least one roleId required")
	}

	unit, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		found, err := s.roles.GetByIDs(txCtx, roleIDs)
		if err != nil {
			return nil, err
		}
		if missing := missingIDs(roleIDs, roleKeys(found)); len(missing) > 0 {
			return nil, serrors.NewValidation("org_unit_unknown_roles", "unknown role ids").
				WithDetails(map[string]any{"roleIds": uuidsToStrings(missing)})
		}
		if err := s.assignments.AddAssignments(txCtx, unitID, roleIDs, scope, actor); err != nil {
			return nil, err
		}
		return unit, nil
	})
	if err != nil {
		return err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionRolesAssigned).Inc()
	s.publish(ctx, orgunit.NewRolesAssignedEvent(unit, actor, roleIDs, scope))
	return nil
}

func (s *OrgUnitService) RemoveRole(ctx context.Context, unitID, roleID uuid.UUID) error {
	actor := actorID(ctx)
	unit, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		return unit, s.assignments.RemoveAssignment(txCtx, unitID, roleID)
	})
	if err != nil {
		return err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionRoleRemoved).Inc()
	s.publish(ctx, orgunit.NewRoleRemovedEvent(unit, actor, roleID))
	return nil
}

// DeleteImpact previews a cascading delete with no side effects. The
// commit path recomputes the same figures through the same helper so
// the preview can never diverge from what the delete actually does.
func (s *OrgUnitService) DeleteImpact(ctx context.Context, unitID uuid.UUID) (*DeleteImpact, error) {
	return composables.InTenantTxResult(ctx, func(txCtx context.Context) (*DeleteImpact, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		impact, _, err := s.computeImpact(txCtx, unit)
		return impact, err
	})
}

func (s *OrgUnitService) computeImpact(ctx context.Context, unit *orgunit.OrgUnit) (*DeleteImpact, []uuid.UUID, error) {
	descendants, err := s.repo.FindDescendants(ctx, unit.ID())
	if err != nil {
		return nil, nil, err
	}
	descendantIDs := make([]uuid.UUID, 0, len(descendants))
	for _, descendant := range descendants {
		descendantIDs = append(descendantIDs, descendant.ID())
	}

	membersDirect, err := s.members.CountByUnitIDs(ctx, []uuid.UUID{unit.ID()})
	if err != nil {
		return nil, nil, err
	}
	membersInherited, err := s.members.CountByUnitIDs(ctx, descendantIDs)
	if err != nil {
		return nil, nil, err
	}
	rolesDirect, err := s.assignments.CountByUnitIDs(ctx, []uuid.UUID{unit.ID()})
	if err != nil {
		return nil, nil, err
	}
	rolesInherited, err := s.assignments.CountByUnitIDs(ctx, descendantIDs)
	if err != nil {
		return nil, nil, err
	}

	preview := make([]string, 0, namePreviewLimit)
	preview = append(preview, unit.Name())
	for _, descendant := range descendants {
		if len(preview) == namePreviewLimit {
			break
		}
		preview = append(preview, descendant.Name())
	}

	return &DeleteImpact{
		DescendantUnitsCount:       len(descendants),
		MembersDirectCount:         membersDirect,
		MembersInheritedCount:      membersInherited,
		RoleAssignmentsCount:       rolesDirect,
		RolesInheritedImpactCount:  rolesInherited,
		WillDeleteUnitNamesPreview: preview,
	}, descendantIDs, nil
}

// Delete archives the unit and its whole subtree, then hard-deletes
// the member and role rows of the archived set. The ordering matters:
// a crash between the two steps leaves association rows pointing at
// archived units, which is recoverable; the reverse would not be.
func (s *OrgUnitService) Delete(ctx context.Context, unitID uuid.UUID, confirmationText string) (*DeleteImpact, error) {
	actor := actorID(ctx)
	now := time.Now()

	type deleteState struct {
		unit         *orgunit.OrgUnit
		impact       *DeleteImpact
		idsToArchive []uuid.UUID
		before       map[string]any
	}
	state, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*deleteState, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		impact, descendantIDs, err := s.computeImpact(txCtx, unit)
		if err != nil {
			return nil, err
		}
		if impact.RequiresConfirmation() &&
			strings.TrimSpace(confirmationText) != strings.TrimSpace(unit.Name()) {
			return nil, serrors.NewValidation("org_unit_confirmation_mismatch", "confirmation text must match the unit name").
				WithDetails(map[string]any{"unitId": unit.ID().String()})
		}

		before := map[string]any{
			"id":     unit.ID().String(),
			"status": string(unit.Status()),
		}
		if unit.ArchivedAt() != nil {
			before["archivedAt"] = unit.ArchivedAt().Format(time.RFC3339)
		}

		idsToArchive := append([]uuid.UUID{unitID}, descendantIDs...)
		patch := orgunit.UpdateManyPatch{
			Status:     orgunit.StatusArchived,
			ArchivedAt: &now,
			UpdatedBy:  actor,
		}
		if err := s.repo.UpdateMany(txCtx, idsToArchive, patch); err != nil {
			return nil, err
		}
		return &deleteState{unit: unit, impact: impact, idsToArchive: idsToArchive, before: before}, nil
	})
	if err != nil {
		return nil, err
	}

	// Association cleanup runs after the archive has committed.
	err = composables.InTenantTx(ctx, func(txCtx context.Context) error {
		if err := s.members.RemoveByUnitIDs(txCtx, state.idsToArchive); err != nil {
			return err
		}
		return s.assignments.RemoveByUnitIDs(txCtx, state.idsToArchive)
	})
	if err != nil {
		return nil, err
	}

	orgUnitMutations.WithLabelValues(orgunit.ActionArchived).Inc()
	orgUnitCascadeSize.Observe(float64(len(state.idsToArchive)))
	state.unit.Archive(now, actor)
	s.publish(ctx, orgunit.NewArchivedEvent(state.unit, actor, state.before, state.impact.DescendantUnitsCount))
	return state.impact, nil
}

// Restore re-activates the unit and its whole subtree. Associations
// deleted at delete-time stay gone.
func (s *OrgUnitService) Restore(ctx context.Context, unitID uuid.UUID) error {
	actor := actorID(ctx)
	type restoreState struct {
		unit            *orgunit.OrgUnit
		descendantCount int
		cascadeSize     int
	}
	state, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*restoreState, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		descendants, err := s.repo.FindDescendants(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		ids := make([]uuid.UUID, 0, len(descendants)+1)
		ids = append(ids, unitID)
		for _, descendant := range descendants {
			ids = append(ids, descendant.ID())
		}
		patch := orgunit.UpdateManyPatch{
			Status:     orgunit.StatusActive,
			ArchivedAt: nil,
			UpdatedBy:  actor,
		}
		if err := s.repo.UpdateMany(txCtx, ids, patch); err != nil {
			return nil, err
		}
		return &restoreState{unit: unit, descendantCount: len(descendants), cascadeSize: len(ids)}, nil
	})
	if err != nil {
		return err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionRestored).Inc()
	orgUnitCascadeSize.Observe(float64(state.cascadeSize))
	state.unit.Restore(actor)
	s.publish(ctx, orgunit.NewRestoredEvent(state.unit, actor, state.descendantCount))
	return nil
}

// Archive flips a single unit to archived without cascading and
// without touching its associations.
func (s *OrgUnitService) Archive(ctx context.Context, unitID uuid.UUID) (*orgunit.OrgUnit, error) {
	actor := actorID(ctx)
	now := time.Now()
	var before map[string]any
	archived, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*orgunit.OrgUnit, error) {
		unit, err := s.repo.GetByID(txCtx, unitID)
		if err != nil {
			return nil, err
		}
		before = map[string]any{
			"id":     unit.ID().String(),
			"status": string(unit.Status()),
		}
		unit.Archive(now, actor)
		return s.repo.Update(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}
	orgUnitMutations.WithLabelValues(orgunit.ActionArchived).Inc()
	s.publish(ctx, orgunit.NewArchivedEvent(archived, actor, before, 0))
	return archived, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dedupeMembers(members []orgunit.AddMember) []orgunit.AddMember {
	seen := make(map[uuid.UUID]struct{}, len(members))
	out := make([]orgunit.AddMember, 0, len(members))
	for _, member := range members {
		if member.UserID == uuid.Nil {
			continue
		}
		if _, ok := seen[member.UserID]; ok {
			continue
		}
		seen[member.UserID] = struct{}{}
		if member.RoleInUnit != nil {
			trimmed := strings.TrimSpace(*member.RoleInUnit)
			if trimmed == "" {
				member.RoleInUnit = nil
			} else {
				member.RoleInUnit = &trimmed
			}
		}
		out = append(out, member)
	}
	return out
}

func missingIDs(wanted []uuid.UUID, found map[uuid.UUID]struct{}) []uuid.UUID {
	var missing []uuid.UUID
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func userKeys(users []*user.User) map[uuid.UUID]struct{} {
	keys := make(map[uuid.UUID]struct{}, len(users))
	for _, u := range users {
		keys[u.ID()] = struct{}{}
	}
	return keys
}

func roleKeys(roles []*role.Role) map[uuid.UUID]struct{} {
	keys := make(map[uuid.UUID]struct{}, len(roles))
	for _, r := range roles {
		keys[r.ID()] = struct{}{}
	}
	return keys
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
