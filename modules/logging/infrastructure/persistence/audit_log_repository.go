package persistence

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/modules/logging/infrastructure/persistence/models"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/repo"
)

const (
	auditLogFindQuery = `
		SELECT id, tenant_id, category, action, actor_id, target_id, target_name,
			before, after, ip, user_agent, result, severity, created_at
		FROM audit_logs`

	auditLogCountQuery = `SELECT COUNT(*) FROM audit_logs`

	auditLogInsertQuery = `
		INSERT INTO audit_logs (
			id, tenant_id, category, action, actor_id, target_id, target_name,
			before, after, ip, user_agent, result, severity, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
)

type AuditLogRepository struct{}

func NewAuditLogRepository() auditlog.Repository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *auditlog.AuditLog) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	before, err := marshalPayload(log.Before())
	if err != nil {
		return err
	}
	after, err := marshalPayload(log.After())
	if err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		auditLogInsertQuery,
		log.ID(),
		log.TenantID(),
		log.Category(),
		log.Action(),
		log.ActorID(),
		log.TargetID(),
		log.TargetName(),
		before,
		after,
		log.IP(),
		log.UserAgent(),
		log.Result(),
		log.Severity(),
		log.CreatedAt(),
	); err != nil {
		return errors.Wrap(err, "failed to insert audit log")
	}
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, params *auditlog.FindParams) ([]*auditlog.AuditLog, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	where, args := buildFilters(tenantID, params)
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	query := repo.Join(
		auditLogFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY created_at DESC, id DESC",
		repo.FormatLimitOffset(limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}
	defer rows.Close()

	var logs []*auditlog.AuditLog
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.Category,
			&m.Action,
			&m.ActorID,
			&m.TargetID,
			&m.TargetName,
			&m.Before,
			&m.After,
			&m.IP,
			&m.UserAgent,
			&m.Result,
			&m.Severity,
			&m.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan audit log row")
		}
		entity, err := toDomainAuditLog(&m)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return logs, nil
}

func (r *AuditLogRepository) Count(ctx context.Context, params *auditlog.FindParams) (int64, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return 0, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := buildFilters(tenantID, params)
	var count int64
	query := repo.Join(auditLogCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count audit logs")
	}
	return count, nil
}

func buildFilters(tenantID any, params *auditlog.FindParams) ([]string, []interface{}) {
	where := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}
	if params.Category != "" {
		args = append(args, params.Category)
		where = append(where, "category = $"+strconv.Itoa(len(args)))
	}
	if params.Action != "" {
		args = append(args, params.Action)
		where = append(where, "action = $"+strconv.Itoa(len(args)))
	}
	if params.TargetID != nil {
		args = append(args, *params.TargetID)
		where = append(where, "target_id = $"+strconv.Itoa(len(args)))
	}
	return where, args
}

func marshalPayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal audit payload")
	}
	return data, nil
}
