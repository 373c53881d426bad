package orgunit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MemberView is a membership row joined with the user profile it
// references. Inherited is view-time only and never stored.
type MemberView struct {
	UserID     uuid.UUID
	OrgUnitID  uuid.UUID
	Name       string
	Email      string
	Status     string
	AvatarURL  *string
	RoleInUnit *string
	Inherited  bool
	CreatedAt  time.Time
}

// AddMember is one row of an AddMembers batch.
type AddMember struct {
	UserID     uuid.UUID
	RoleInUnit *string
}

type MemberRepository interface {
	// ListByUnitIDs returns membership rows stored on any of the given
	// units, joined with user name/email/status.
	ListByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) ([]*MemberView, error)
	CountByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) (int, error)
	// AddMembers upserts by (tenant, unit, user); re-adding an existing
	// member is a no-op.
	AddMembers(ctx context.Context, unitID uuid.UUID, members []AddMember, createdBy *uuid.UUID) error
	// RemoveMember is idempotent.
	RemoveMember(ctx context.Context, unitID, userID uuid.UUID) error
	RemoveByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) error
}
