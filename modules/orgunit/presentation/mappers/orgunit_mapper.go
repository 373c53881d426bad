package mappers

import (
	"time"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/presentation/viewmodels"
	"github.com/campuskit/campuskit/modules/orgunit/services"
)

func OrgUnitToViewModel(unit *orgunit.OrgUnit) viewmodels.OrgUnit {
	path := make([]string, 0, len(unit.Path()))
	for _, ancestorID := range unit.Path() {
		path = append(path, ancestorID.String())
	}
	vm := viewmodels.OrgUnit{
		ID:        unit.ID().String(),
		Name:      unit.Name(),
		Code:      unit.Code(),
		Type:      string(unit.Type()),
		Status:    string(unit.Status()),
		Path:      path,
		Depth:     unit.Depth(),
		SortOrder: unit.SortOrder(),
		CreatedAt: unit.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt: unit.UpdatedAt().UTC().Format(time.RFC3339),
	}
	if unit.ParentID() != nil {
		parentID := unit.ParentID().String()
		vm.ParentID = &parentID
	}
	if unit.ArchivedAt() != nil {
		archivedAt := unit.ArchivedAt().UTC().Format(time.RFC3339)
		vm.ArchivedAt = &archivedAt
	}
	return vm
}

func DetailToViewModel(detail *services.OrgUnitDetail) viewmodels.OrgUnitDetail {
	breadcrumb := make([]viewmodels.BreadcrumbEntry, 0, len(detail.Breadcrumb))
	for _, entry := range detail.Breadcrumb {
		breadcrumb = append(breadcrumb, viewmodels.BreadcrumbEntry{
			ID:   entry.ID.String(),
			Name: entry.Name,
		})
	}
	return viewmodels.OrgUnitDetail{
		OrgUnit:      OrgUnitToViewModel(detail.Unit),
		Breadcrumb:   breadcrumb,
		ChildCount:   detail.ChildCount,
		MembersCount: detail.MembersCount,
		RolesCount:   detail.RolesCount,
	}
}

func MemberToViewModel(view *orgunit.MemberView) viewmodels.Member {
	return viewmodels.Member{
		UserID:     view.UserID.String(),
		Name:       view.Name,
		Email:      view.Email,
		Status:     view.Status,
		AvatarURL:  view.AvatarURL,
		RoleInUnit: view.RoleInUnit,
		Inherited:  view.Inherited,
	}
}

func RoleAssignmentToViewModel(view *orgunit.RoleAssignmentView) viewmodels.RoleAssignment {
	return viewmodels.RoleAssignment{
		RoleID:    view.RoleID.String(),
		RoleName:  view.RoleName,
		Scope:     string(view.Scope),
		Inherited: view.Inherited,
	}
}

func ImpactToViewModel(impact *services.DeleteImpact) viewmodels.DeleteImpact {
	return viewmodels.DeleteImpact{
		DescendantUnitsCount:       impact.DescendantUnitsCount,
		MembersDirectCount:         impact.MembersDirectCount,
		MembersInheritedCount:      impact.MembersInheritedCount,
		RoleAssignmentsCount:       impact.RoleAssignmentsCount,
		RolesInheritedImpactCount:  impact.RolesInheritedImpactCount,
		RequiresConfirmation:       impact.RequiresConfirmation(),
		WillDeleteUnitNamesPreview: impact.WillDeleteUnitNamesPreview,
	}
}
