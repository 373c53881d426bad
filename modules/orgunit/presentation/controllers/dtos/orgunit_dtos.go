package dtos

import (
	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/services"
)

type CreateOrgUnitRequest struct {
	Name      string     `json:"name" validate:"required"`
	Code      *string    `json:"code"`
	Type      string     `json:"type" validate:"omitempty,oneof=organization division department school custom"`
	Status    string     `json:"status" validate:"omitempty,oneof=active archived"`
	ParentID  *uuid.UUID `json:"parentId"`
	SortOrder int        `json:"sortOrder"`
}

func (r *CreateOrgUnitRequest) ToCommand() services.CreateOrgUnitCommand {
	return services.CreateOrgUnitCommand{
		Name:      r.Name,
		Code:      r.Code,
		Type:      r.Type,
		Status:    r.Status,
		ParentID:  r.ParentID,
		SortOrder: r.SortOrder,
	}
}

type UpdateOrgUnitRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Code      *string `json:"code"`
	Type      *string `json:"type" validate:"omitempty,oneof=organization division department school custom"`
	Status    *string `json:"status" validate:"omitempty,oneof=active archived"`
	SortOrder *int    `json:"sortOrder"`
}

func (r *UpdateOrgUnitRequest) ToCommand() services.UpdateOrgUnitCommand {
	return services.UpdateOrgUnitCommand{
		Name:      r.Name,
		Code:      r.Code,
		Type:      r.Type,
		Status:    r.Status,
		SortOrder: r.SortOrder,
	}
}

type AddMemberEntry struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	RoleInUnit *string   `json:"roleInUnit"`
}

type AddMembersRequest struct {
	Members []AddMemberEntry `json:"members" validate:"required,min=1,dive"`
}

func (r *AddMembersRequest) ToCommand() services.AddMembersCommand {
	members := make([]orgunit.AddMember, 0, len(r.Members))
	for _, entry := range r.Members {
		members = append(members, orgunit.AddMember{
			UserID:     entry.UserID,
			RoleInUnit: entry.RoleInUnit,
		})
	}
	return services.AddMembersCommand{Members: members}
}

type AssignRolesRequest struct {
	RoleIDs []uuid.UUID `json:"roleIds" validate:"required,min=1"`
	Scope   string      `json:"scope" validate:"omitempty,oneof=applies_to_unit_only inherits_down"`
}

func (r *AssignRolesRequest) ToCommand() services.AssignRolesCommand {
	return services.AssignRolesCommand{RoleIDs: r.RoleIDs, Scope: r.Scope}
}

type DeleteOrgUnitRequest struct {
	ConfirmationText string `json:"confirmationText"`
}

// ListQuery is decoded from the list endpoint's query string.
type ListQuery struct {
	ParentID *uuid.UUID `form:"parentId"`
	Status   string     `form:"status"`
	Name     string     `form:"name"`
	Cursor   *uuid.UUID `form:"cursor"`
	Limit    int        `form:"limit"`
}

type TreeQuery struct {
	Status string `form:"status"`
}

type MembersQuery struct {
	Search           string `form:"search"`
	IncludeInherited bool   `form:"includeInherited"`
}

type RolesQuery struct {
	IncludeInherited bool `form:"includeInherited"`
}
