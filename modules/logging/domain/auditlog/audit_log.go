package auditlog

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryOrgUnit = "ORG_UNIT"

	ResultSuccess = "success"

	SeverityInfo = "info"
)

// AuditLog is one recorded mutation. Before and After keep the
// loosely-structured shape of the source event.
type AuditLog struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	category   string
	action     string
	actorID    *uuid.UUID
	targetID   uuid.UUID
	targetName string
	before     map[string]any
	after      map[string]any
	ip         string
	userAgent  string
	result     string
	severity   string
	createdAt  time.Time
}

type Option func(*AuditLog)

func WithID(id uuid.UUID) Option {
	return func(l *AuditLog) {
		l.id = id
	}
}

func WithActorID(actorID *uuid.UUID) Option {
	return func(l *AuditLog) {
		l.actorID = actorID
	}
}

func WithBefore(before map[string]any) Option {
	return func(l *AuditLog) {
		l.before = before
	}
}

func WithAfter(after map[string]any) Option {
	return func(l *AuditLog) {
		l.after = after
	}
}

func WithIP(ip string) Option {
	return func(l *AuditLog) {
		l.ip = ip
	}
}

func WithUserAgent(userAgent string) Option {
	return func(l *AuditLog) {
		l.userAgent = userAgent
	}
}

func WithResult(result string) Option {
	return func(l *AuditLog) {
		l.result = result
	}
}

func WithSeverity(severity string) Option {
	return func(l *AuditLog) {
		l.severity = severity
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(l *AuditLog) {
		l.createdAt = createdAt
	}
}

func New(tenantID uuid.UUID, category, action string, targetID uuid.UUID, targetName string, opts ...Option) *AuditLog {
	l := &AuditLog{
		id:         uuid.New(),
		tenantID:   tenantID,
		category:   category,
		action:     action,
		targetID:   targetID,
		targetName: targetName,
		result:     ResultSuccess,
		severity:   SeverityInfo,
		createdAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *AuditLog) ID() uuid.UUID {
	return l.id
}

func (l *AuditLog) TenantID() uuid.UUID {
	return l.tenantID
}

func (l *AuditLog) Category() string {
	return l.category
}

func (l *AuditLog) Action() string {
	return l.action
}

func (l *AuditLog) ActorID() *uuid.UUID {
	return l.actorID
}

func (l *AuditLog) TargetID() uuid.UUID {
	return l.targetID
}

func (l *AuditLog) TargetName() string {
	return l.targetName
}

func (l *AuditLog) Before() map[string]any {
	return l.before
}

func (l *AuditLog) After() map[string]any {
	return l.after
}

func (l *AuditLog) IP() string {
	return l.ip
}

func (l *AuditLog) UserAgent() string {
	return l.userAgent
}

func (l *AuditLog) Result() string {
	return l.result
}

func (l *AuditLog) Severity() string {
	return l.severity
}

func (l *AuditLog) CreatedAt() time.Time {
	return l.createdAt
}
