package seed

import (
	"context"

	"github.com/google/uuid"

	coreservices "github.com/campuskit/campuskit/modules/core/services"
	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
)

// DemoTree creates a small district/school/department hierarchy under
// the local development tenant. It is a no-op when units already exist.
func DemoTree(ctx context.Context, app application.Application) error {
	tenantService := app.Service(coreservices.TenantService{}).(*coreservices.TenantService)
	unitService := app.Service(services.OrgUnitService{}).(*services.OrgUnitService)

	t, err := tenantService.GetByDomain(ctx, "localhost")
	if err != nil {
		return err
	}
	ctx = composables.WithTenantID(ctx, t.ID())

	existing, err := unitService.GetTree(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	district, err := unitService.Create(ctx, services.CreateOrgUnitCommand{
		Name: "Springfield District",
		Code: strptr("district"),
		Type: string(orgunit.TypeOrganization),
	})
	if err != nil {
		return err
	}

	school, err := unitService.Create(ctx, services.CreateOrgUnitCommand{
		Name:     "Springfield Elementary",
		Code:     strptr("elementary"),
		Type:     string(orgunit.TypeSchool),
		ParentID: idptr(district.ID()),
	})
	if err != nil {
		return err
	}

	for i, name := range []string{"Teaching", "Administration", "Facilities"} {
		if _, err := unitService.Create(ctx, services.CreateOrgUnitCommand{
			Name:      name,
			Type:      string(orgunit.TypeDepartment),
			ParentID:  idptr(school.ID()),
			SortOrder: i,
		}); err != nil {
			return err
		}
	}
	return nil
}

func strptr(s string) *string       { return &s }
func idptr(id uuid.UUID) *uuid.UUID { return &id }
