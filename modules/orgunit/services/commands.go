package services

import (
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
)

// CreateOrgUnitCommand creates a unit. Status is optional and defaults
// to active; passing archived creates the unit already archived.
type CreateOrgUnitCommand struct {
	Name      string
	Code      *string
	Type      string
	Status    string
	ParentID  *uuid.UUID
	SortOrder int
}

// UpdateOrgUnitCommand is a patch: nil fields are left untouched.
type UpdateOrgUnitCommand struct {
	Name      *string
	Code      *string
	Type      *string
	Status    *string
	SortOrder *int
}

type AddMembersCommand struct {
	Members []orgunit.AddMember
}

type AssignRolesCommand struct {
	RoleIDs []uuid.UUID
	Scope   string
}

// BreadcrumbEntry is one resolved ancestor of a unit, root first.
type BreadcrumbEntry struct {
	ID   uuid.UUID
	Name string
}

// OrgUnitDetail is the get-one projection: the unit plus its resolved
// ancestry and direct association counts.
type OrgUnitDetail struct {
	Unit         *orgunit.OrgUnit
	Breadcrumb   []BreadcrumbEntry
	ChildCount   int
	MembersCount int
	RolesCount   int
}

// TreeItem pairs a unit with its immediate-children count.
type TreeItem struct {
	Unit       *orgunit.OrgUnit
	ChildCount int
}

// DeleteImpact is the read-only preview of a cascading delete. The
// commit path recomputes the same figures before archiving.
type DeleteImpact struct {
	DescendantUnitsCount       int
	MembersDirectCount         int
	MembersInheritedCount      int
	RoleAssignmentsCount       int
	RolesInheritedImpactCount  int
	WillDeleteUnitNamesPreview []string
}

// RequiresConfirmation reports whether a delete of this impact must be
// gated on the caller retyping the unit name.
func (i *DeleteImpact) RequiresConfirmation() bool {
	return i.DescendantUnitsCount > 0 ||
		i.MembersDirectCount > 0 ||
		i.MembersInheritedCount > 0 ||
		i.RoleAssignmentsCount > 0 ||
		i.RolesInheritedImpactCount > 0
}
