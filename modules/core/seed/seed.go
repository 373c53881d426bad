package seed

import (
	"context"

	"github.com/campuskit/campuskit/modules/core/domain/aggregates/user"
	"github.com/campuskit/campuskit/modules/core/domain/entities/role"
	"github.com/campuskit/campuskit/modules/core/domain/entities/tenant"
	coreservices "github.com/campuskit/campuskit/modules/core/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
)

// DevTenant creates a local development tenant with a couple of
// accounts and roles to click around with.
func DevTenant(ctx context.Context, app application.Application) error {
	tenantService := app.Service(coreservices.TenantService{}).(*coreservices.TenantService)
	userService := app.Service(coreservices.UserService{}).(*coreservices.UserService)
	roleService := app.Service(coreservices.RoleService{}).(*coreservices.RoleService)

	t, err := tenantService.GetByDomain(ctx, "localhost")
	if err != nil {
		t, err = tenantService.Create(ctx, tenant.New("Springfield School District", tenant.WithDomain("localhost")))
		if err != nil {
			return err
		}
	}

	ctx = composables.WithTenantID(ctx, t.ID())

	existing, err := userService.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		seedUsers := []*user.User{
			user.New("principal@springfield.test", "Seymour", "Skinner", user.WithTenantID(t.ID())),
			user.New("teacher@springfield.test", "Edna", "Krabappel", user.WithTenantID(t.ID())),
			user.New("accountant@springfield.test", "Waylon", "Smithers", user.WithTenantID(t.ID())),
		}
		for _, u := range seedUsers {
			if _, err := userService.Create(ctx, u); err != nil {
				return err
			}
		}
	}

	roles, err := roleService.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		seedRoles := []*role.Role{
			role.New("unit-admin", role.WithTenantID(t.ID()), role.WithDescription("Manage a unit and everything below it")),
			role.New("finance-viewer", role.WithTenantID(t.ID()), role.WithDescription("Read-only access to finance records")),
		}
		for _, sr := range seedRoles {
			if _, err := roleService.Create(ctx, sr); err != nil {
				return err
			}
		}
	}

	return nil
}
