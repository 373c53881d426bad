package role

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Role, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*Role, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, r *Role) (*Role, error)
	Update(ctx context.Context, r *Role) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
}
