package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/modules/logging/services"
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/configuration"
)

// OrgUnitAuditHandler persists one audit row per org unit mutation.
// Persistence failures are logged and swallowed; the audit trail is a
// best-effort sink and never fails the originating operation.
type OrgUnitAuditHandler struct {
	app     application.Application
	service *services.LogsService
	logger  *logrus.Logger
}

func RegisterOrgUnitAuditHandler(app application.Application) {
	handler := &OrgUnitAuditHandler{
		app:     app,
		service: app.Service(services.LogsService{}).(*services.LogsService),
		logger:  configuration.Use().Logger(),
	}
	app.EventPublisher().Subscribe(handler.onOrgUnitEvent)
}

func (h *OrgUnitAuditHandler) onOrgUnitEvent(event *orgunit.Event) {
	if h.service == nil || h.app == nil {
		return
	}

	ctx := composables.WithPool(context.Background(), h.app.DB())
	ctx = composables.WithTenantID(ctx, event.TenantID)

	entry := auditlog.New(
		event.TenantID,
		auditlog.CategoryOrgUnit,
		event.Action,
		event.TargetID,
		event.TargetName,
		auditlog.WithActorID(event.ActorID),
		auditlog.WithBefore(event.Before),
		auditlog.WithAfter(event.After),
		auditlog.WithIP(event.IP),
		auditlog.WithUserAgent(event.UserAgent),
		auditlog.WithCreatedAt(event.OccurredAt),
	)

	if err := h.service.Create(ctx, entry); err != nil {
		h.logger.WithError(err).
			WithField("action", event.Action).
			WithField("target_id", event.TargetID).
			Warn("failed to persist org unit audit log")
	}
}
