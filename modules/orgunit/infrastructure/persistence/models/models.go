package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type OrgUnit struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Name       string
	Code       sql.NullString
	UnitType   string
	Status     string
	ParentID   *uuid.UUID
	Path       []uuid.UUID
	SortOrder  int
	CreatedBy  *uuid.UUID
	UpdatedBy  *uuid.UUID
	ArchivedAt sql.NullTime
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrgUnitMemberView is the membership row joined with the user it
// references.
type OrgUnitMemberView struct {
	UserID     uuid.UUID
	OrgUnitID  uuid.UUID
	Name       string
	Email      string
	Status     string
	AvatarURL  sql.NullString
	RoleInUnit sql.NullString
	CreatedAt  time.Time
}

// OrgUnitRoleAssignmentView is the assignment row joined with the role
// it references.
type OrgUnitRoleAssignmentView struct {
	RoleID    uuid.UUID
	OrgUnitID uuid.UUID
	RoleName  string
	Scope     string
	CreatedAt time.Time
}
