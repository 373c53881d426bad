package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/modules/logging/infrastructure/persistence/models"
)

func TestToDomainAuditLog(t *testing.T) {
	actorID := uuid.New()
	m := &models.AuditLog{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		Category:   auditlog.CategoryOrgUnit,
		Action:     "org_unit.created",
		ActorID:    &actorID,
		TargetID:   uuid.New(),
		TargetName: "Finance",
		After:      []byte(`{"name":"Finance"}`),
		IP:         "198.51.100.4",
		UserAgent:  "campuskit-cli/1.0",
		Result:     auditlog.ResultSuccess,
		Severity:   auditlog.SeverityInfo,
		CreatedAt:  time.Now(),
	}

	entry, err := toDomainAuditLog(m)
	require.NoError(t, err)
	require.Equal(t, m.ID, entry.ID())
	require.Equal(t, &actorID, entry.ActorID())
	require.Nil(t, entry.Before())
	require.Equal(t, "Finance", entry.After()["name"])
	require.Equal(t, "198.51.100.4", entry.IP())
	require.Equal(t, "campuskit-cli/1.0", entry.UserAgent())
}

func TestToDomainAuditLog_BadPayload(t *testing.T) {
	m := &models.AuditLog{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		Before:   []byte(`{`),
	}
	_, err := toDomainAuditLog(m)
	require.Error(t, err)
}
