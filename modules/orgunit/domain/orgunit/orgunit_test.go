package orgunit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/serrors"
)

func TestNew_Defaults(t *testing.T) {
	tenantID := uuid.New()
	unit, err := New(tenantID, "  Finance  ")
	require.NoError(t, err)

	require.Equal(t, "Finance", unit.Name())
	require.Equal(t, tenantID, unit.TenantID())
	require.Equal(t, TypeDepartment, unit.Type())
	require.Equal(t, StatusActive, unit.Status())
	require.Nil(t, unit.ParentID())
	require.Empty(t, unit.Path())
	require.Equal(t, 0, unit.Depth())
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New(uuid.New(), "   ")
	require.Error(t, err)
	serr, ok := serrors.As(err)
	require.True(t, ok)
	require.Equal(t, serrors.KindValidation, serr.Kind)
}

func TestNew_OwnIDInPath(t *testing.T) {
	id := uuid.New()
	_, err := New(uuid.New(), "Broken", WithID(id), WithPath([]uuid.UUID{uuid.New(), id}))
	require.Error(t, err)
	serr, ok := serrors.As(err)
	require.True(t, ok)
	require.Equal(t, "org_unit_cyclic_path", serr.Code)
}

func TestDepth_EqualsPathLength(t *testing.T) {
	parentID := uuid.New()
	grandparentID := uuid.New()
	unit, err := New(uuid.New(), "Payroll",
		WithParentID(&parentID),
		WithPath([]uuid.UUID{grandparentID, parentID}),
	)
	require.NoError(t, err)
	require.Equal(t, 2, unit.Depth())
	require.Equal(t, len(unit.Path()), unit.Depth())
}

func TestArchiveRestore(t *testing.T) {
	unit, err := New(uuid.New(), "HQ")
	require.NoError(t, err)

	actorID := uuid.New()
	at := time.Now()
	unit.Archive(at, &actorID)
	require.Equal(t, StatusArchived, unit.Status())
	require.NotNil(t, unit.ArchivedAt())
	require.Equal(t, &actorID, unit.UpdatedBy())

	unit.Restore(&actorID)
	require.Equal(t, StatusActive, unit.Status())
	require.Nil(t, unit.ArchivedAt())
}

func TestSetCode_TrimsToNil(t *testing.T) {
	unit, err := New(uuid.New(), "HQ")
	require.NoError(t, err)

	blank := "   "
	unit.SetCode(&blank)
	require.Nil(t, unit.Code())

	code := " FIN "
	unit.SetCode(&code)
	require.NotNil(t, unit.Code())
	require.Equal(t, "FIN", *unit.Code())
}

func TestParseType(t *testing.T) {
	parsed, err := ParseType("")
	require.NoError(t, err)
	require.Equal(t, TypeDepartment, parsed)

	parsed, err = ParseType("school")
	require.NoError(t, err)
	require.Equal(t, TypeSchool, parsed)

	_, err = ParseType("campus")
	require.Error(t, err)
}

func TestParseScope(t *testing.T) {
	parsed, err := ParseScope("")
	require.NoError(t, err)
	require.Equal(t, ScopeAppliesToUnitOnly, parsed)

	parsed, err = ParseScope("inherits_down")
	require.NoError(t, err)
	require.Equal(t, ScopeInheritsDown, parsed)

	_, err = ParseScope("sideways")
	require.Error(t, err)
}

func TestFindParams_ClampedLimit(t *testing.T) {
	require.Equal(t, DefaultPageLimit, (&FindParams{}).ClampedLimit())
	require.Equal(t, DefaultPageLimit, (&FindParams{Limit: -5}).ClampedLimit())
	require.Equal(t, 10, (&FindParams{Limit: 10}).ClampedLimit())
	require.Equal(t, MaxPageLimit, (&FindParams{Limit: 10000}).ClampedLimit())
}

func TestSnapshot_IncludesPath(t *testing.T) {
	parentID := uuid.New()
	unit, err := New(uuid.New(), "Finance",
		WithParentID(&parentID),
		WithPath([]uuid.UUID{parentID}),
	)
	require.NoError(t, err)

	snapshot := Snapshot(unit)
	require.Equal(t, "Finance", snapshot["name"])
	require.Equal(t, 1, snapshot["depth"])
	require.Equal(t, []string{parentID.String()}, snapshot["path"])
	require.Equal(t, parentID.String(), snapshot["parentId"])
}
