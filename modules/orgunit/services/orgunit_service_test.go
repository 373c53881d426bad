package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/eventbus"
	"github.com/campuskit/campuskit/pkg/serrors"
)

type fixture struct {
	ctx         context.Context
	tenantID    uuid.UUID
	svc         *OrgUnitService
	units       *fakeUnitRepo
	members     *fakeMemberRepo
	assignments *fakeAssignmentRepo
	users       *fakeUserRepo
	roles       *fakeRoleRepo
	events      *[]*orgunit.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tenantID := uuid.New()

	units := newFakeUnitRepo()
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()
	members := newFakeMemberRepo(users)
	assignments := newFakeAssignmentRepo(roles)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	bus := eventbus.NewEventPublisher(log)
	var events []*orgunit.Event
	bus.Subscribe(func(e *orgunit.Event) {
		events = append(events, e)
	})

	ctx := composables.WithTenantID(context.Background(), tenantID)
	ctx = composables.WithTx(ctx, nopTx{})

	return &fixture{
		ctx:         ctx,
		tenantID:    tenantID,
		svc:         NewOrgUnitService(units, members, assignments, users, roles, bus),
		units:       units,
		members:     members,
		assignments: assignments,
		users:       users,
		roles:       roles,
		events:      &events,
	}
}

func (f *fixture) mustCreate(t *testing.T, name string, parentID *uuid.UUID) *orgunit.OrgUnit {
	t.Helper()
	unit, err := f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return unit
}

func (f *fixture) seedUser(name, email string) uuid.UUID {
	u := user.New(email, name, "Test", user.WithTenantID(f.tenantID), user.WithIsActive(true))
	f.users.byID[u.ID()] = u
	return u.ID()
}

func (f *fixture) seedRole(name string) uuid.UUID {
	r := role.New(name, role.WithTenantID(f.tenantID))
	f.roles.byID[r.ID()] = r
	return r.ID()
}

func TestCreate_PathInvariant(t *testing.T) {
	f := newFixture(t)

	root := f.mustCreate(t, "HQ", nil)
	require.Empty(t, root.Path())
	require.Equal(t, 0, root.Depth())

	rootID := root.ID()
	child := f.mustCreate(t, "Finance", &rootID)
	require.Equal(t, []uuid.UUID{rootID}, child.Path())
	require.Equal(t, 1, child.Depth())

	childID := child.ID()
	grandchild := f.mustCreate(t, "Payroll", &childID)
	require.Equal(t, []uuid.UUID{rootID, childID}, grandchild.Path())
	require.Equal(t, 2, grandchild.Depth())
}

func TestCreate_TrimsName(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "  Admissions  ", nil)
	require.Equal(t, "Admissions", unit.Name())
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: "   "})
	require.True(t, serrors.IsValidation(err))
}

func TestCreate_MissingParent(t *testing.T) {
	f := newFixture(t)
	missing := uuid.New()
	_, err := f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: "Orphan", ParentID: &missing})
	require.True(t, serrors.IsNotFound(err))
}

func TestCreate_StatusDefaultsToActive(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Admissions", nil)
	require.Equal(t, orgunit.StatusActive, unit.Status())
	require.Nil(t, unit.ArchivedAt())
}

func TestCreate_ArchivedStatusHonored(t *testing.T) {
	f := newFixture(t)

	unit, err := f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: "Old Campus", Status: "archived"})
	require.NoError(t, err)
	require.Equal(t, orgunit.StatusArchived, unit.Status())
	require.NotNil(t, unit.ArchivedAt())

	_, err = f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: "Bad", Status: "deleted"})
	require.True(t, serrors.IsValidation(err))
}

func TestCreate_InactiveParentRejected(t *testing.T) {
	f := newFixture(t)
	parent := f.mustCreate(t, "Closed Campus", nil)
	_, err := f.svc.Archive(f.ctx, parent.ID())
	require.NoError(t, err)

	parentID := parent.ID()
	_, err = f.svc.Create(f.ctx, CreateOrgUnitCommand{Name: "New Wing", ParentID: &parentID})
	require.True(t, serrors.IsValidation(err))
	serr, _ := serrors.As(err)
	require.Equal(t, "org_unit_parent_inactive", serr.Code)
}

func TestCreate_CorruptedAncestorUnloadable(t *testing.T) {
	// A stored record whose path contains its own id cannot even be
	// reconstructed as an entity; the constructor is the regression
	// guard against corrupted ancestors.
	id := uuid.New()
	_, err := orgunit.New(uuid.New(), "Corrupted",
		orgunit.WithID(id),
		orgunit.WithPath([]uuid.UUID{id}),
	)
	require.True(t, serrors.IsValidation(err))
	serr, _ := serrors.As(err)
	require.Equal(t, "org_unit_cyclic_path", serr.Code)
}

func TestUpdate_PatchesFields(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Athletics", nil)

	name := "Sports"
	code := "SPT"
	sortOrder := 7
	updated, err := f.svc.Update(f.ctx, unit.ID(), UpdateOrgUnitCommand{
		Name:      &name,
		Code:      &code,
		SortOrder: &sortOrder,
	})
	require.NoError(t, err)
	require.Equal(t, "Sports", updated.Name())
	require.NotNil(t, updated.Code())
	require.Equal(t, "SPT", *updated.Code())
	require.Equal(t, 7, updated.SortOrder())
}

func TestUpdate_StatusTransitionSetsArchivedAt(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Library", nil)

	archived := string(orgunit.StatusArchived)
	updated, err := f.svc.Update(f.ctx, unit.ID(), UpdateOrgUnitCommand{Status: &archived})
	require.NoError(t, err)
	require.Equal(t, orgunit.StatusArchived, updated.Status())
	require.NotNil(t, updated.ArchivedAt())

	active := string(orgunit.StatusActive)
	restored, err := f.svc.Update(f.ctx, unit.ID(), UpdateOrgUnitCommand{Status: &active})
	require.NoError(t, err)
	require.Equal(t, orgunit.StatusActive, restored.Status())
	require.Nil(t, restored.ArchivedAt())
}

func TestGetByID_BreadcrumbAndCounts(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	child := f.mustCreate(t, "Finance", &rootID)
	childID := child.ID()
	f.mustCreate(t, "Payroll", &childID)

	userID := f.seedUser("Pat", "pat@example.com")
	require.NoError(t, f.svc.AddMembers(f.ctx, childID, AddMembersCommand{
		Members: []orgunit.AddMember{{UserID: userID}},
	}))

	detail, err := f.svc.GetByID(f.ctx, childID)
	require.NoError(t, err)
	require.Equal(t, []BreadcrumbEntry{{ID: rootID, Name: "HQ"}}, detail.Breadcrumb)
	require.Equal(t, 1, detail.ChildCount)
	require.Equal(t, 1, detail.MembersCount)
	require.Equal(t, 0, detail.RolesCount)
}

func TestGetByID_BreadcrumbDropsUnresolvableAncestors(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	child := f.mustCreate(t, "Finance", &rootID)
	childID := child.ID()
	grandchild := f.mustCreate(t, "Payroll", &childID)

	// Drop the middle ancestor from storage.
	delete(f.units.units, childID)

	detail, err := f.svc.GetByID(f.ctx, grandchild.ID())
	require.NoError(t, err)
	require.Equal(t, []BreadcrumbEntry{{ID: rootID, Name: "HQ"}}, detail.Breadcrumb)
}

func TestGetTree_SinglePassChildCount(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	f.mustCreate(t, "Finance", &rootID)
	f.mustCreate(t, "Operations", &rootID)

	items, err := f.svc.GetTree(f.ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	counts := make(map[uuid.UUID]int)
	for _, item := range items {
		counts[item.Unit.ID()] = item.ChildCount
	}
	require.Equal(t, 2, counts[rootID])
}

func TestList_CursorPagination(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		f.mustCreate(t, name, nil)
	}

	first, err := f.svc.List(f.ctx, &orgunit.FindParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)

	cursor := first[1].ID()
	second, err := f.svc.List(f.ctx, &orgunit.FindParams{Limit: 2, Cursor: &cursor})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.NotEqual(t, first[0].ID(), second[0].ID())
	require.NotEqual(t, first[1].ID(), second[0].ID())
}

func TestListMembers_SubtreeScope(t *testing.T) {
	f := newFixture(t)
	parent := f.mustCreate(t, "Parent", nil)
	parentID := parent.ID()
	child := f.mustCreate(t, "Child", &parentID)
	childID := child.ID()
	grandchild := f.mustCreate(t, "Grandchild", &childID)

	parentMember := f.seedUser("Paula", "paula@example.com")
	childMember := f.seedUser("Chris", "chris@example.com")
	grandchildMember := f.seedUser("Glen", "glen@example.com")

	require.NoError(t, f.svc.AddMembers(f.ctx, parentID, AddMembersCommand{Members: []orgunit.AddMember{{UserID: parentMember}}}))
	require.NoError(t, f.svc.AddMembers(f.ctx, childID, AddMembersCommand{Members: []orgunit.AddMember{{UserID: childMember}}}))
	require.NoError(t, f.svc.AddMembers(f.ctx, grandchild.ID(), AddMembersCommand{Members: []orgunit.AddMember{{UserID: grandchildMember}}}))

	// Direct listing returns only the child's own row.
	direct, err := f.svc.ListMembers(f.ctx, childID, "", false)
	require.NoError(t, err)
	require.Len(t, direct, 1)
	require.Equal(t, childMember, direct[0].UserID)
	require.False(t, direct[0].Inherited)

	// Inherited listing covers the child's subtree, never its
	// ancestors: the parent's member must not appear.
	inherited, err := f.svc.ListMembers(f.ctx, childID, "", true)
	require.NoError(t, err)
	require.Len(t, inherited, 2)
	byUser := make(map[uuid.UUID]*orgunit.MemberView)
	for _, view := range inherited {
		byUser[view.UserID] = view
	}
	require.NotContains(t, byUser, parentMember)
	require.False(t, byUser[childMember].Inherited)
	require.True(t, byUser[grandchildMember].Inherited)
}

func TestListMembers_SearchFiltersNameAndEmail(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Staff", nil)
	alice := f.seedUser("Alice", "alice@school.test")
	f.seedUser("Bob", "bob@school.test")
	require.NoError(t, f.svc.AddMembers(f.ctx, unit.ID(), AddMembersCommand{Members: []orgunit.AddMember{
		{UserID: alice},
	}}))

	found, err := f.svc.ListMembers(f.ctx, unit.ID(), "ALICE", false)
	require.NoError(t, err)
	require.Len(t, found, 1)

	none, err := f.svc.ListMembers(f.ctx, unit.ID(), "zelda", false)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestAddMembers_EmptyListRejected(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Staff", nil)
	err := f.svc.AddMembers(f.ctx, unit.ID(), AddMembersCommand{})
	require.True(t, serrors.IsValidation(err))
}

func TestAddMembers_UnknownUsersListedAllOrNothing(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Staff", nil)
	known := f.seedUser("Kim", "kim@example.com")
	ghost := uuid.New()

	err := f.svc.AddMembers(f.ctx, unit.ID(), AddMembersCommand{Members: []orgunit.AddMember{
		{UserID: known},
		{UserID: ghost},
	}})
	require.True(t, serrors.IsValidation(err))
	serr, _ := serrors.As(err)
	require.Equal(t, "org_unit_unknown_users", serr.Code)
	require.Equal(t, []string{ghost.String()}, serr.Details["userIds"])

	// Nothing was applied.
	count, err := f.members.CountByUnitIDs(f.ctx, []uuid.UUID{unit.ID()})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestAddMembers_UpsertIsNoOpOnReAdd(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Staff", nil)
	userID := f.seedUser("Kim", "kim@example.com")

	cmd := AddMembersCommand{Members: []orgunit.AddMember{{UserID: userID}, {UserID: userID}}}
	require.NoError(t, f.svc.AddMembers(f.ctx, unit.ID(), cmd))
	require.NoError(t, f.svc.AddMembers(f.ctx, unit.ID(), cmd))

	count, err := f.members.CountByUnitIDs(f.ctx, []uuid.UUID{unit.ID()})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRemoveMember_Idempotent(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "Staff", nil)
	require.NoError(t, f.svc.RemoveMember(f.ctx, unit.ID(), uuid.New()))
}

func TestListRoles_ScopeAsymmetry(t *testing.T) {
	f := newFixture(t)
	ancestor := f.mustCreate(t, "Ancestor", nil)
	ancestorID := ancestor.ID()
	descendant := f.mustCreate(t, "Descendant", &ancestorID)

	inheritable := f.seedRole("district-admin")
	local := f.seedRole("front-desk")
	own := f.seedRole("teacher")

	require.NoError(t, f.svc.AssignRoles(f.ctx, ancestorID, AssignRolesCommand{
		RoleIDs: []uuid.UUID{inheritable}, Scope: string(orgunit.ScopeInheritsDown),
	}))
	require.NoError(t, f.svc.AssignRoles(f.ctx, ancestorID, AssignRolesCommand{
		RoleIDs: []uuid.UUID{local}, Scope: string(orgunit.ScopeAppliesToUnitOnly),
	}))
	require.NoError(t, f.svc.AssignRoles(f.ctx, descendant.ID(), AssignRolesCommand{
		RoleIDs: []uuid.UUID{own}, Scope: string(orgunit.ScopeAppliesToUnitOnly),
	}))

	// The inherits-down ancestor role surfaces at the descendant; the
	// unit-only ancestor role never does.
	views, err := f.svc.ListRoles(f.ctx, descendant.ID(), true)
	require.NoError(t, err)
	byRole := make(map[uuid.UUID]*orgunit.RoleAssignmentView)
	for _, view := range views {
		byRole[view.RoleID] = view
	}
	require.Contains(t, byRole, inheritable)
	require.True(t, byRole[inheritable].Inherited)
	require.NotContains(t, byRole, local)
	require.Contains(t, byRole, own)
	require.False(t, byRole[own].Inherited)

	// A descendant's role never surfaces at the ancestor.
	ancestorViews, err := f.svc.ListRoles(f.ctx, ancestorID, true)
	require.NoError(t, err)
	for _, view := range ancestorViews {
		require.NotEqual(t, own, view.RoleID)
	}
}

func TestAssignRoles_ScopeReplacedOnReAssign(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "School", nil)
	roleID := f.seedRole("principal")

	require.NoError(t, f.svc.AssignRoles(f.ctx, unit.ID(), AssignRolesCommand{
		RoleIDs: []uuid.UUID{roleID}, Scope: string(orgunit.ScopeAppliesToUnitOnly),
	}))
	require.NoError(t, f.svc.AssignRoles(f.ctx, unit.ID(), AssignRolesCommand{
		RoleIDs: []uuid.UUID{roleID}, Scope: string(orgunit.ScopeInheritsDown),
	}))

	views, err := f.svc.ListRoles(f.ctx, unit.ID(), false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, orgunit.ScopeInheritsDown, views[0].Scope)
}

func TestAssignRoles_UnknownRolesRejected(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "School", nil)
	ghost := uuid.New()
	err := f.svc.AssignRoles(f.ctx, unit.ID(), AssignRolesCommand{RoleIDs: []uuid.UUID{ghost}})
	require.True(t, serrors.IsValidation(err))
	serr, _ := serrors.As(err)
	require.Equal(t, "org_unit_unknown_roles", serr.Code)
}

func TestDeleteImpact_CountsAndPreview(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	child := f.mustCreate(t, "Finance", &rootID)
	childID := child.ID()

	directMember := f.seedUser("Dana", "dana@example.com")
	childMember := f.seedUser("Casey", "casey@example.com")
	require.NoError(t, f.svc.AddMembers(f.ctx, rootID, AddMembersCommand{Members: []orgunit.AddMember{{UserID: directMember}}}))
	require.NoError(t, f.svc.AddMembers(f.ctx, childID, AddMembersCommand{Members: []orgunit.AddMember{{UserID: childMember}}}))

	roleID := f.seedRole("auditor")
	require.NoError(t, f.svc.AssignRoles(f.ctx, childID, AssignRolesCommand{RoleIDs: []uuid.UUID{roleID}}))

	impact, err := f.svc.DeleteImpact(f.ctx, rootID)
	require.NoError(t, err)
	require.Equal(t, 1, impact.DescendantUnitsCount)
	require.Equal(t, 1, impact.MembersDirectCount)
	require.Equal(t, 1, impact.MembersInheritedCount)
	require.Equal(t, 0, impact.RoleAssignmentsCount)
	require.Equal(t, 1, impact.RolesInheritedImpactCount)
	require.Equal(t, []string{"HQ", "Finance"}, impact.WillDeleteUnitNamesPreview)
	require.True(t, impact.RequiresConfirmation())
}

func TestDelete_ImpactCommitParity(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	child := f.mustCreate(t, "Finance", &rootID)
	memberID := f.seedUser("Dana", "dana@example.com")
	require.NoError(t, f.svc.AddMembers(f.ctx, child.ID(), AddMembersCommand{Members: []orgunit.AddMember{{UserID: memberID}}}))

	preview, err := f.svc.DeleteImpact(f.ctx, rootID)
	require.NoError(t, err)

	committed, err := f.svc.Delete(f.ctx, rootID, "HQ")
	require.NoError(t, err)
	require.Equal(t, preview, committed)
}

func TestDelete_ConfirmationGate(t *testing.T) {
	f := newFixture(t)

	// Zero impact: no confirmation needed.
	lone := f.mustCreate(t, "Lone", nil)
	_, err := f.svc.Delete(f.ctx, lone.ID(), "")
	require.NoError(t, err)

	// Nonzero impact: missing or mismatched confirmation fails.
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	f.mustCreate(t, "Finance", &rootID)

	_, err = f.svc.Delete(f.ctx, rootID, "")
	require.True(t, serrors.IsValidation(err))
	_, err = f.svc.Delete(f.ctx, rootID, "hq")
	require.True(t, serrors.IsValidation(err))

	// Exact trimmed match succeeds.
	_, err = f.svc.Delete(f.ctx, rootID, "  HQ  ")
	require.NoError(t, err)
}

func TestDelete_CascadesAndHardDeletesAssociations(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	d1 := f.mustCreate(t, "D1", &rootID)
	d2 := f.mustCreate(t, "D2", &rootID)

	memberID := f.seedUser("Dana", "dana@example.com")
	require.NoError(t, f.svc.AddMembers(f.ctx, d1.ID(), AddMembersCommand{Members: []orgunit.AddMember{{UserID: memberID}}}))

	_, err := f.svc.Delete(f.ctx, rootID, "HQ")
	require.NoError(t, err)

	for _, id := range []uuid.UUID{rootID, d1.ID(), d2.ID()} {
		unit, err := f.units.GetByID(f.ctx, id)
		require.NoError(t, err)
		require.Equal(t, orgunit.StatusArchived, unit.Status())
		require.NotNil(t, unit.ArchivedAt())
	}

	count, err := f.members.CountByUnitIDs(f.ctx, []uuid.UUID{rootID, d1.ID(), d2.ID()})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRestore_CascadesWithoutResurrectingAssociations(t *testing.T) {
	f := newFixture(t)
	root := f.mustCreate(t, "HQ", nil)
	rootID := root.ID()
	d1 := f.mustCreate(t, "D1", &rootID)
	f.mustCreate(t, "D2", &rootID)

	memberID := f.seedUser("Dana", "dana@example.com")
	require.NoError(t, f.svc.AddMembers(f.ctx, d1.ID(), AddMembersCommand{Members: []orgunit.AddMember{{UserID: memberID}}}))

	_, err := f.svc.Delete(f.ctx, rootID, "HQ")
	require.NoError(t, err)
	require.NoError(t, f.svc.Restore(f.ctx, rootID))

	descendants, err := f.units.FindDescendants(f.ctx, rootID)
	require.NoError(t, err)
	require.Len(t, descendants, 2)
	for _, unit := range append(descendants, f.units.units[rootID]) {
		require.Equal(t, orgunit.StatusActive, unit.Status())
		require.Nil(t, unit.ArchivedAt())
	}

	count, err := f.members.CountByUnitIDs(f.ctx, []uuid.UUID{d1.ID()})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEndToEnd_HQFinancePayroll(t *testing.T) {
	f := newFixture(t)
	hq := f.mustCreate(t, "HQ", nil)
	hqID := hq.ID()
	finance := f.mustCreate(t, "Finance", &hqID)
	financeID := finance.ID()
	payroll := f.mustCreate(t, "Payroll", &financeID)

	r1 := f.seedRole("R1")
	require.NoError(t, f.svc.AssignRoles(f.ctx, financeID, AssignRolesCommand{
		RoleIDs: []uuid.UUID{r1}, Scope: string(orgunit.ScopeInheritsDown),
	}))

	views, err := f.svc.ListRoles(f.ctx, payroll.ID(), true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, r1, views[0].RoleID)
	require.True(t, views[0].Inherited)

	_, err = f.svc.Delete(f.ctx, financeID, "Finance")
	require.NoError(t, err)

	for _, id := range []uuid.UUID{financeID, payroll.ID()} {
		unit, err := f.units.GetByID(f.ctx, id)
		require.NoError(t, err)
		require.Equal(t, orgunit.StatusArchived, unit.Status())
	}

	after, err := f.svc.ListRoles(f.ctx, payroll.ID(), true)
	require.NoError(t, err)
	require.Empty(t, after)
}

func TestMutations_PublishAuditEvents(t *testing.T) {
	f := newFixture(t)
	unit := f.mustCreate(t, "HQ", nil)

	require.Len(t, *f.events, 1)
	created := (*f.events)[0]
	require.Equal(t, orgunit.ActionCreated, created.Action)
	require.Equal(t, f.tenantID, created.TenantID)
	require.Equal(t, unit.ID(), created.TargetID)
	require.Nil(t, created.Before)
	require.Equal(t, "HQ", created.After["name"])

	_, err := f.svc.Delete(f.ctx, unit.ID(), "")
	require.NoError(t, err)
	archived := (*f.events)[len(*f.events)-1]
	require.Equal(t, orgunit.ActionArchived, archived.Action)
	require.Equal(t, 0, archived.After["descendantUnitsCount"])
	require.Equal(t, string(orgunit.StatusActive), archived.Before["status"])
}

func TestMutations_StampRequestOrigin(t *testing.T) {
	f := newFixture(t)
	ctx := composables.WithParams(f.ctx, &composables.Params{
		IP:        "203.0.113.7",
		UserAgent: "campuskit-cli/1.0",
	})

	_, err := f.svc.Create(ctx, CreateOrgUnitCommand{Name: "Registrar"})
	require.NoError(t, err)

	require.Len(t, *f.events, 1)
	created := (*f.events)[0]
	require.Equal(t, "203.0.113.7", created.IP)
	require.Equal(t, "campuskit-cli/1.0", created.UserAgent)

	// Mutations outside a request, like seeds, carry no origin.
	f.mustCreate(t, "Bursar", nil)
	bare := (*f.events)[len(*f.events)-1]
	require.Empty(t, bare.IP)
	require.Empty(t, bare.UserAgent)
}
