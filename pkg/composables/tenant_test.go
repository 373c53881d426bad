package composables_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/composables"
)

func TestTenantID_RoundTrip(t *testing.T) {
	tenantID := uuid.New()
	ctx := composables.WithTenantID(context.Background(), tenantID)

	got, err := composables.UseTenantID(ctx)
	require.NoError(t, err)
	require.Equal(t, tenantID, got)
}

func TestTenantID_MissingFromContext(t *testing.T) {
	_, err := composables.UseTenantID(context.Background())
	require.ErrorIs(t, err, composables.ErrNoTenantID)
}

func TestActorID_RoundTrip(t *testing.T) {
	actorID := uuid.New()
	ctx := composables.WithActorID(context.Background(), actorID)

	got, err := composables.UseActorID(ctx)
	require.NoError(t, err)
	require.Equal(t, actorID, got)
}

func TestActorID_MissingFromContext(t *testing.T) {
	_, err := composables.UseActorID(context.Background())
	require.ErrorIs(t, err, composables.ErrNoActorID)
}
