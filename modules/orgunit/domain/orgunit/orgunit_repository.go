package orgunit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// FindParams drives cursor pagination over a stable (sort_order, id)
// order. Cursor is the last-seen unit id of the previous page.
type FindParams struct {
	ParentID *uuid.UUID
	Status   *Status
	Name     string
	Cursor   *uuid.UUID
	Limit    int
}

// ClampedLimit returns the limit forced into [1, MaxPageLimit],
// defaulting when unset.
func (p *FindParams) ClampedLimit() int {
	if p.Limit <= 0 {
		return DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		return MaxPageLimit
	}
	return p.Limit
}

// UpdateManyPatch is the only bulk patch shape the cascade operations
// need. Other fields are not bulk-updatable.
type UpdateManyPatch struct {
	Status     Status
	ArchivedAt *time.Time
	UpdatedBy  *uuid.UUID
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrgUnit, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*OrgUnit, error)
	GetAll(ctx context.Context, status *Status) ([]*OrgUnit, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*OrgUnit, error)
	Create(ctx context.Context, unit *OrgUnit) (*OrgUnit, error)
	Update(ctx context.Context, unit *OrgUnit) (*OrgUnit, error)
	UpdateMany(ctx context.Context, ids []uuid.UUID, patch UpdateManyPatch) error
	FindDescendants(ctx context.Context, unitID uuid.UUID) ([]*OrgUnit, error)
}
