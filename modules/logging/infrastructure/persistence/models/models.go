package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Category   string
	Action     string
	ActorID    *uuid.UUID
	TargetID   uuid.UUID
	TargetName string
	Before     []byte
	After      []byte
	IP         string
	UserAgent  string
	Result     string
	Severity   string
	CreatedAt  time.Time
}
