package persistence

import (
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/modules/logging/infrastructure/persistence/models"
)

func toDomainAuditLog(m *models.AuditLog) (*auditlog.AuditLog, error) {
	opts := []auditlog.Option{
		auditlog.WithID(m.ID),
		auditlog.WithActorID(m.ActorID),
		auditlog.WithIP(m.IP),
		auditlog.WithUserAgent(m.UserAgent),
		auditlog.WithResult(m.Result),
		auditlog.WithSeverity(m.Severity),
		auditlog.WithCreatedAt(m.CreatedAt),
	}
	if len(m.Before) > 0 {
		var before map[string]any
		if err := json.Unmarshal(m.Before, &before); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal audit before payload")
		}
		opts = append(opts, auditlog.WithBefore(before))
	}
	if len(m.After) > 0 {
		var after map[string]any
		if err := json.Unmarshal(m.After, &after); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal audit after payload")
		}
		opts = append(opts, auditlog.WithAfter(after))
	}
	return auditlog.New(m.TenantID, m.Category, m.Action, m.TargetID, m.TargetName, opts...), nil
}
