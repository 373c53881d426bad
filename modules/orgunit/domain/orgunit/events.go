package orgunit

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated       = "org_unit.created"
	ActionUpdated       = "org_unit.updated"
	ActionArchived      = "org_unit.archived"
	ActionRestored      = "org_unit.restored"
	ActionMembersAdded  = "org_unit.members_added"
	ActionMemberRemoved = "org_unit.member_removed"
	ActionRolesAssigned = "org_unit.roles_assigned"
	ActionRoleRemoved   = "org_unit.role_removed"
)

// Event is the audit payload published for every mutating operation.
// Before and After are loosely structured on purpose: the captured
// fields vary per action.
type Event struct {
	Action     string
	TenantID   uuid.UUID
	ActorID    *uuid.UUID
	TargetID   uuid.UUID
	TargetName string
	Before     map[string]any
	After      map[string]any
	IP         string
	UserAgent  string
	OccurredAt time.Time
}

func newEvent(action string, unit *OrgUnit, actorID *uuid.UUID) *Event {
	return &Event{
		Action:     action,
		TenantID:   unit.TenantID(),
		ActorID:    actorID,
		TargetID:   unit.ID(),
		TargetName: unit.Name(),
		OccurredAt: time.Now(),
	}
}

// Snapshot captures the audit-relevant fields of a unit.
func Snapshot(unit *OrgUnit) map[string]any {
	path := make([]string, 0, len(unit.Path()))
	for _, ancestorID := range unit.Path() {
		path = append(path, ancestorID.String())
	}
	snapshot := map[string]any{
		"id":        unit.ID().String(),
		"name":      unit.Name(),
		"type":      string(unit.Type()),
		"status":    string(unit.Status()),
		"path":      path,
		"depth":     unit.Depth(),
		"sortOrder": unit.SortOrder(),
	}
	if unit.Code() != nil {
		snapshot["code"] = *unit.Code()
	}
	if unit.ParentID() != nil {
		snapshot["parentId"] = unit.ParentID().String()
	}
	if unit.ArchivedAt() != nil {
		snapshot["archivedAt"] = unit.ArchivedAt().Format(time.RFC3339)
	}
	return snapshot
}

func NewCreatedEvent(unit *OrgUnit, actorID *uuid.UUID) *Event {
	e := newEvent(ActionCreated, unit, actorID)
	e.After = Snapshot(unit)
	return e
}

func NewUpdatedEvent(unit *OrgUnit, actorID *uuid.UUID, before map[string]any) *Event {
	e := newEvent(ActionUpdated, unit, actorID)
	e.Before = before
	e.After = Snapshot(unit)
	return e
}

func NewArchivedEvent(unit *OrgUnit, actorID *uuid.UUID, before map[string]any, descendantCount int) *Event {
	e := newEvent(ActionArchived, unit, actorID)
	e.Before = before
	after := map[string]any{
		"id":                   unit.ID().String(),
		"status":               string(StatusArchived),
		"descendantUnitsCount": descendantCount,
	}
	if unit.ArchivedAt() != nil {
		after["archivedAt"] = unit.ArchivedAt().Format(time.RFC3339)
	}
	e.After = after
	return e
}

func NewRestoredEvent(unit *OrgUnit, actorID *uuid.UUID, descendantCount int) *Event {
	e := newEvent(ActionRestored, unit, actorID)
	e.After = map[string]any{
		"id":                   unit.ID().String(),
		"status":               string(StatusActive),
		"descendantUnitsCount": descendantCount,
	}
	return e
}

func NewMembersAddedEvent(unit *OrgUnit, actorID *uuid.UUID, userIDs []uuid.UUID) *Event {
	e := newEvent(ActionMembersAdded, unit, actorID)
	e.After = map[string]any{"userIds": uuidStrings(userIDs)}
	return e
}

func NewMemberRemovedEvent(unit *OrgUnit, actorID *uuid.UUID, userID uuid.UUID) *Event {
	e := newEvent(ActionMemberRemoved, unit, actorID)
	e.Before = map[string]any{"userId": userID.String()}
	return e
}

func NewRolesAssignedEvent(unit *OrgUnit, actorID *uuid.UUID, roleIDs []uuid.UUID, scope Scope) *Event {
	e := newEvent(ActionRolesAssigned, unit, actorID)
	e.After = map[string]any{"roleIds": uuidStrings(roleIDs), "scope": string(scope)}
	return e
}

func NewRoleRemovedEvent(unit *OrgUnit, actorID *uuid.UUID, roleID uuid.UUID) *Event {
	e := newEvent(ActionRoleRemoved, unit, actorID)
	e.Before = map[string]any{"roleId": roleID.String()}
	return e
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
