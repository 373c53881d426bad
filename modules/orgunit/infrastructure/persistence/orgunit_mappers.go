package persistence

import (
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/infrastructure/persistence/models"
)

func toDomainOrgUnit(m *models.OrgUnit) (*orgunit.OrgUnit, error) {
	var code *string
	if m.Code.Valid {
		code = &m.Code.String
	}
	opts := []orgunit.Option{
		orgunit.WithID(m.ID),
		orgunit.WithCode(code),
		orgunit.WithType(orgunit.Type(m.UnitType)),
		orgunit.WithStatus(orgunit.Status(m.Status)),
		orgunit.WithParentID(m.ParentID),
		orgunit.WithPath(m.Path),
		orgunit.WithSortOrder(m.SortOrder),
		orgunit.WithCreatedBy(m.CreatedBy),
		orgunit.WithUpdatedBy(m.UpdatedBy),
		orgunit.WithCreatedAt(m.CreatedAt),
		orgunit.WithUpdatedAt(m.UpdatedAt),
	}
	if m.ArchivedAt.Valid {
		archivedAt := m.ArchivedAt.Time
		opts = append(opts, orgunit.WithArchivedAt(&archivedAt))
	}
	return orgunit.New(m.TenantID, m.Name, opts...)
}

func toDomainMemberView(m *models.OrgUnitMemberView) *orgunit.MemberView {
	view := &orgunit.MemberView{
		UserID:    m.UserID,
		OrgUnitID: m.OrgUnitID,
		Name:      m.Name,
		Email:     m.Email,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	if m.AvatarURL.Valid {
		view.AvatarURL = &m.AvatarURL.String
	}
	if m.RoleInUnit.Valid {
		view.RoleInUnit = &m.RoleInUnit.String
	}
	return view
}

func toDomainRoleAssignmentView(m *models.OrgUnitRoleAssignmentView) *orgunit.RoleAssignmentView {
	return &orgunit.RoleAssignmentView{
		RoleID:    m.RoleID,
		OrgUnitID: m.OrgUnitID,
		RoleName:  m.RoleName,
		Scope:     orgunit.Scope(m.Scope),
		CreatedAt: m.CreatedAt,
	}
}
