package orgunit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/pkg/serrors"
)

// Scope controls whether a role assignment propagates to descendant
// units.
type Scope string

const (
	ScopeAppliesToUnitOnly Scope = "applies_to_unit_only"
	ScopeInheritsDown      Scope = "inherits_down"
)

func ParseScope(raw string) (Scope, error) {
	switch Scope(raw) {
	case ScopeAppliesToUnitOnly, ScopeInheritsDown:
		return Scope(raw), nil
	case "":
		return ScopeAppliesToUnitOnly, nil
	}
	return "", serrors.NewValidation("org_unit_invalid_scope", "invalid role assignment scope").
		WithDetails(map[string]any{"scope": raw})
}

// RoleAssignmentView is an assignment row joined with the role it
// references. Inherited is view-time only.
type RoleAssignmentView struct {
	RoleID    uuid.UUID
	OrgUnitID uuid.UUID
	RoleName  string
	Scope     Scope
	Inherited bool
	CreatedAt time.Time
}

type RoleAssignmentRepository interface {
	ListByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) ([]*RoleAssignmentView, error)
	CountByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) (int, error)
	// AddAssignments upserts by (tenant, unit, role); a conflicting row
	// has its scope replaced.
	AddAssignments(ctx context.Context, unitID uuid.UUID, roleIDs []uuid.UUID, scope Scope, createdBy *uuid.UUID) error
	// RemoveAssignment is idempotent.
	RemoveAssignment(ctx context.Context, unitID, roleID uuid.UUID) error
	RemoveByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) error
}
