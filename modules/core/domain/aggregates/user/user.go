package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record other modules reference by id. Identity
// and authentication live in the gateway, so only the profile fields
// needed for display and validation are kept here.
type User struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	email     string
	firstName string
	lastName  string
	avatarURL *string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

type Option func(*User)

func WithID(id uuid.UUID) Option {
	return func(u *User) {
		u.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(u *User) {
		u.tenantID = tenantID
	}
}

func WithAvatarURL(avatarURL *string) Option {
	return func(u *User) {
		u.avatarURL = avatarURL
	}
}

func WithIsActive(isActive bool) Option {
	return func(u *User) {
		u.isActive = isActive
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *User) {
		u.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(u *User) {
		u.updatedAt = updatedAt
	}
}

func New(email, firstName, lastName string, opts ...Option) *User {
	u := &User{
		id:        uuid.New(),
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		isActive:  true,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) TenantID() uuid.UUID {
	return u.tenantID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) FullName() string {
	if u.firstName == "" {
		return u.lastName
	}
	if u.lastName == "" {
		return u.firstName
	}
	return u.firstName + " " + u.lastName
}

func (u *User) AvatarURL() *string {
	return u.avatarURL
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetName(firstName, lastName string) {
	u.firstName = firstName
	u.lastName = lastName
	u.updatedAt = time.Now()
}

func (u *User) SetIsActive(isActive bool) {
	u.isActive = isActive
	u.updatedAt = time.Now()
}
