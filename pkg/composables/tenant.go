package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/pkg/constants"
)

var (
	ErrNoTenantID = errors.New("no tenant id found in context")
	ErrNoActorID  = errors.New("no actor id found in context")
)

func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, tenantID)
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoTenantID
	}
	return tenantID, nil
}

func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.ActorKey, actorID)
}

func UseActorID(ctx context.Context) (uuid.UUID, error) {
	actorID, ok := ctx.Value(constants.ActorKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoActorID
	}
	return actorID, nil
}
