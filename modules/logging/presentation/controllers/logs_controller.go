package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/modules/logging/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/httpapi"
)

type LogsController struct {
	app       application.Application
	service   *services.LogsService
	apiPrefix string
}

func NewLogsController(app application.Application) application.Controller {
	return &LogsController{
		app:       app,
		service:   app.Service(services.LogsService{}).(*services.LogsService),
		apiPrefix: "/logs/api",
	}
}

func (c *LogsController) Key() string {
	return c.apiPrefix
}

func (c *LogsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.apiPrefix).Subrouter()
	api.HandleFunc("/audit", c.ListAuditLogs).Methods(http.MethodGet)
}

type auditLogQuery struct {
	Category string     `form:"category"`
	Action   string     `form:"action"`
	TargetID *uuid.UUID `form:"targetId"`
	Limit    int        `form:"limit"`
	Offset   int        `form:"offset"`
}

type auditLogResponse struct {
	ID         string         `json:"id"`
	Category   string         `json:"category"`
	Action     string         `json:"action"`
	ActorID    *string        `json:"actorId,omitempty"`
	TargetID   string         `json:"targetId"`
	TargetName string         `json:"targetName"`
	Before     map[string]any `json:"before,omitempty"`
	After      map[string]any `json:"after,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	Result     string         `json:"result"`
	Severity   string         `json:"severity"`
	CreatedAt  string         `json:"createdAt"`
}

type auditLogListResponse struct {
	Items []auditLogResponse `json:"items"`
	Total int64              `json:"total"`
}

func (c *LogsController) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query, err := composables.UseQuery(&auditLogQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", "query string is invalid", nil)
		return
	}

	logs, total, err := c.service.List(r.Context(), &auditlog.FindParams{
		Category: query.Category,
		Action:   query.Action,
		TargetID: query.TargetID,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	items := make([]auditLogResponse, 0, len(logs))
	for _, entry := range logs {
		item := auditLogResponse{
			ID:         entry.ID().String(),
			Category:   entry.Category(),
			Action:     entry.Action(),
			TargetID:   entry.TargetID().String(),
			TargetName: entry.TargetName(),
			Before:     entry.Before(),
			After:      entry.After(),
			IP:         entry.IP(),
			UserAgent:  entry.UserAgent(),
			Result:     entry.Result(),
			Severity:   entry.Severity(),
			CreatedAt:  entry.CreatedAt().UTC().Format(time.RFC3339),
		}
		if entry.ActorID() != nil {
			actorID := entry.ActorID().String()
			item.ActorID = &actorID
		}
		items = append(items, item)
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, auditLogListResponse{Items: items, Total: total})
}
