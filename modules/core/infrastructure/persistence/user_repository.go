package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

const (
	userFindQuery = `
		SELECT id, tenant_id, email, first_name, last_name, avatar_url, is_active, created_at, updated_at
		FROM users`

	userExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND tenant_id = $2)`

	userInsertQuery = `
		INSERT INTO users (id, tenant_id, email, first_name, last_name, avatar_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	userUpdateQuery = `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, avatar_url = $4, is_active = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`
)

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	users, err := r.queryUsers(ctx, userFindQuery+" WHERE id = $1 AND tenant_id = $2", id.String(), tenantID.String())
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, id.String())
	}
	return r.queryUsers(ctx, userFindQuery+" WHERE id = ANY($1) AND tenant_id = $2", idStrs, tenantID.String())
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return false, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, userExistsQuery, id.String(), tenantID.String()).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		userInsertQuery,
		u.ID().String(),
		u.TenantID().String(),
		u.Email(),
		u.FirstName(),
		u.LastName(),
		avatarValue(u.AvatarURL()),
		u.IsActive(),
		u.CreatedAt(),
		u.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert user")
	}
	return r.GetByID(ctx, u.ID())
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		userUpdateQuery,
		u.Email(),
		u.FirstName(),
		u.LastName(),
		avatarValue(u.AvatarURL()),
		u.IsActive(),
		u.UpdatedAt(),
		u.ID().String(),
		u.TenantID().String(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	return r.GetByID(ctx, u.ID())
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryUsers(ctx, userFindQuery+" WHERE tenant_id = $1 ORDER BY last_name, first_name", tenantID.String())
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID,
			&u.TenantID,
			&u.Email,
			&u.FirstName,
			&u.LastName,
			&u.AvatarURL,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan user row")
		}
		entity, err := toDomainUser(&u)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return users, nil
}

func avatarValue(avatarURL *string) sql.NullString {
	if avatarURL == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *avatarURL, Valid: true}
}
