package services

import (
	"context"

	"github.com/campuskit/campuskit/modules/logging/domain/auditlog"
	"github.com/campuskit/campuskit/pkg/composables"
)

type LogsService struct {
	repo auditlog.Repository
}

func NewLogsService(repo auditlog.Repository) *LogsService {
	return &LogsService{repo: repo}
}

func (s *LogsService) Create(ctx context.Context, log *auditlog.AuditLog) error {
	return composables.InTenantTx(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, log)
	})
}

func (s *LogsService) List(ctx context.Context, params *auditlog.FindParams) ([]*auditlog.AuditLog, int64, error) {
	if params == nil {
		params = &auditlog.FindParams{}
	}
	type result struct {
		logs  []*auditlog.AuditLog
		count int64
	}
	out, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) (*result, error) {
		logs, err := s.repo.List(txCtx, params)
		if err != nil {
			return nil, err
		}
		count, err := s.repo.Count(txCtx, params)
		if err != nil {
			return nil, err
		}
		return &result{logs: logs, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return out.logs, out.count, nil
}
