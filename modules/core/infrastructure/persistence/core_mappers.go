package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/core/domain/entities/tenant"
	"github.com/campuskit/campuskit/modules/core/infrastructure/persistence/models"
)

func toDomainTenant(t *models.Tenant) (*tenant.Tenant, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid tenant id")
	}
	return tenant.New(
		t.Name,
		tenant.WithID(id),
		tenant.WithDomain(t.Domain.String),
		tenant.WithIsActive(t.IsActive),
		tenant.WithCreatedAt(t.CreatedAt),
		tenant.WithUpdatedAt(t.UpdatedAt),
	), nil
}

func toDomainUser(u *models.User) (*user.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id")
	}
	tenantID, err := uuid.Parse(u.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user tenant id")
	}
	var avatarURL *string
	if u.AvatarURL.Valid {
		avatarURL = &u.AvatarURL.String
	}
	return user.New(
		u.Email,
		u.FirstName,
		u.LastName,
		user.WithID(id),
		user.WithAvatarURL(avatarURL),
		user.WithTenantID(tenantID),
		user.WithIsActive(u.IsActive),
		user.WithCreatedAt(u.CreatedAt),
		user.WithUpdatedAt(u.UpdatedAt),
	), nil
}

func toDomainRole(r *models.Role) (*role.Role, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid role id")
	}
	tenantID, err := uuid.Parse(r.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid role tenant id")
	}
	return role.New(
		r.Name,
		role.WithID(id),
		role.WithTenantID(tenantID),
		role.WithDescription(r.Description.String),
		role.WithCreatedAt(r.CreatedAt),
		role.WithUpdatedAt(r.UpdatedAt),
	), nil
}
