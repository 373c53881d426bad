package auditlog

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Category string
	Action   string
	TargetID *uuid.UUID
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, log *AuditLog) error
	List(ctx context.Context, params *FindParams) ([]*AuditLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
}
