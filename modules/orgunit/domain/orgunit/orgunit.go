package orgunit

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/pkg/serrors"
)

type Type string

const (
	TypeOrganization Type = "organization"
	TypeDivision     Type = "division"
	TypeDepartment   Type = "department"
	TypeSchool       Type = "school"
	TypeCustom       Type = "custom"
)

func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeOrganization, TypeDivision, TypeDepartment, TypeSchool, TypeCustom:
		return Type(raw), nil
	case "":
		return TypeDepartment, nil
	}
	return "", serrors.NewValidation("org_unit_invalid_type", "invalid org unit type").
		WithDetails(map[string]any{"type": raw})
}

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusActive, StatusArchived:
		return Status(raw), nil
	case "":
		return StatusActive, nil
	}
	return "", serrors.NewValidation("org_unit_invalid_status", "invalid org unit status").
		WithDetails(map[string]any{"status": raw})
}

// OrgUnit is one node of the per-tenant unit tree. The path holds the
// ancestor ids root to immediate parent, never the unit's own id.
type OrgUnit struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	name       string
	code       *string
	unitType   Type
	status     Status
	parentID   *uuid.UUID
	path       []uuid.UUID
	sortOrder  int
	createdBy  *uuid.UUID
	updatedBy  *uuid.UUID
	archivedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

type Option func(*OrgUnit)

func WithID(id uuid.UUID) Option {
	return func(u *OrgUnit) {
		u.id = id
	}
}

func WithCode(code *string) Option {
	return func(u *OrgUnit) {
		u.code = code
	}
}

func WithType(unitType Type) Option {
	return func(u *OrgUnit) {
		u.unitType = unitType
	}
}

func WithStatus(status Status) Option {
	return func(u *OrgUnit) {
		u.status = status
	}
}

func WithParentID(parentID *uuid.UUID) Option {
	return func(u *OrgUnit) {
		u.parentID = parentID
	}
}

func WithPath(path []uuid.UUID) Option {
	return func(u *OrgUnit) {
		u.path = path
	}
}

func WithSortOrder(sortOrder int) Option {
	return func(u *OrgUnit) {
		u.sortOrder = sortOrder
	}
}

func WithCreatedBy(createdBy *uuid.UUID) Option {
	return func(u *OrgUnit) {
		u.createdBy = createdBy
	}
}

func WithUpdatedBy(updatedBy *uuid.UUID) Option {
	return func(u *OrgUnit) {
		u.updatedBy = updatedBy
	}
}

func WithArchivedAt(archivedAt *time.Time) Option {
	return func(u *OrgUnit) {
		u.archivedAt = archivedAt
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *OrgUnit) {
		u.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(u *OrgUnit) {
		u.updatedAt = updatedAt
	}
}

// New validates the structural invariants at construction: non-empty
// trimmed name and a path that does not contain the unit's own id.
func New(tenantID uuid.UUID, name string, opts ...Option) (*OrgUnit, error) {
	u := &OrgUnit{
		id:        uuid.New(),
		tenantID:  tenantID,
		name:      strings.TrimSpace(name),
		unitType:  TypeDepartment,
		status:    StatusActive,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.name == "" {
		return nil, serrors.NewValidation("org_unit_name_required", "name must not be empty")
	}
	for _, ancestorID := range u.path {
		if ancestorID == u.id {
			return nil, serrors.NewValidation("org_unit_cyclic_path", "unit path must not contain the unit itself").
				WithDetails(map[string]any{"unitId": u.id.String()})
		}
	}
	return u, nil
}

func (u *OrgUnit) ID() uuid.UUID {
	return u.id
}

func (u *OrgUnit) TenantID() uuid.UUID {
	return u.tenantID
}

func (u *OrgUnit) Name() string {
	return u.name
}

func (u *OrgUnit) Code() *string {
	return u.code
}

func (u *OrgUnit) Type() Type {
	return u.unitType
}

func (u *OrgUnit) Status() Status {
	return u.status
}

func (u *OrgUnit) ParentID() *uuid.UUID {
	return u.parentID
}

// Path returns the ancestor ids root to immediate parent.
func (u *OrgUnit) Path() []uuid.UUID {
	return u.path
}

// Depth is defined as len(path), always.
func (u *OrgUnit) Depth() int {
	return len(u.path)
}

func (u *OrgUnit) SortOrder() int {
	return u.sortOrder
}

func (u *OrgUnit) CreatedBy() *uuid.UUID {
	return u.createdBy
}

func (u *OrgUnit) UpdatedBy() *uuid.UUID {
	return u.updatedBy
}

func (u *OrgUnit) ArchivedAt() *time.Time {
	return u.archivedAt
}

func (u *OrgUnit) CreatedAt() time.Time {
	return u.createdAt
}

func (u *OrgUnit) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *OrgUnit) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return serrors.NewValidation("org_unit_name_required", "name must not be empty")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *OrgUnit) SetCode(code *string) {
	if code != nil {
		trimmed := strings.TrimSpace(*code)
		if trimmed == "" {
			code = nil
		} else {
			code = &trimmed
		}
	}
	u.code = code
	u.updatedAt = time.Now()
}

func (u *OrgUnit) SetType(unitType Type) {
	u.unitType = unitType
	u.updatedAt = time.Now()
}

func (u *OrgUnit) SetSortOrder(sortOrder int) {
	u.sortOrder = sortOrder
	u.updatedAt = time.Now()
}

func (u *OrgUnit) SetUpdatedBy(actorID *uuid.UUID) {
	u.updatedBy = actorID
	u.updatedAt = time.Now()
}

func (u *OrgUnit) Archive(at time.Time, actorID *uuid.UUID) {
	u.status = StatusArchived
	u.archivedAt = &at
	u.updatedBy = actorID
	u.updatedAt = time.Now()
}

func (u *OrgUnit) Restore(actorID *uuid.UUID) {
	u.status = StatusActive
	u.archivedAt = nil
	u.updatedBy = actorID
	u.updatedAt = time.Now()
}

// InPath reports whether the given id is one of the unit's ancestors.
func (u *OrgUnit) InPath(id uuid.UUID) bool {
	for _, ancestorID := range u.path {
		if ancestorID == id {
			return true
		}
	}
	return false
}
