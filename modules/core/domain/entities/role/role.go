package role

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named bundle of permissions defined per tenant. The
// permission payload itself is owned by the access-control service;
// org-level assignments only reference roles by id.
type Role struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Role)

func WithID(id uuid.UUID) Option {
	return func(r *Role) {
		r.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(r *Role) {
		r.tenantID = tenantID
	}
}

func WithDescription(description string) Option {
	return func(r *Role) {
		r.description = description
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(r *Role) {
		r.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(r *Role) {
		r.updatedAt = updatedAt
	}
}

func New(name string, opts ...Option) *Role {
	r := &Role{
		id:        uuid.New(),
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Role) ID() uuid.UUID {
	return r.id
}

func (r *Role) TenantID() uuid.UUID {
	return r.tenantID
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Role) SetName(name string) {
	r.name = name
	r.updatedAt = time.Now()
}

func (r *Role) SetDescription(description string) {
	r.description = description
	r.updatedAt = time.Now()
}
