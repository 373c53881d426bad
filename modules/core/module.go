package core

import (
	"embed"

	"github.com/campuskit/campuskit/modules/core/infrastructure/persistence"
	"github.com/campuskit/campuskit/modules/core/services"
	"github.com/campuskit/campuskit/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterMigrations(m.Name(), MigrationFiles, "infrastructure/persistence/schema")

	tenantRepo := persistence.NewTenantRepository()
	userRepo := persistence.NewUserRepository()
	roleRepo := persistence.NewRoleRepository()

	app.RegisterServices(
		services.NewTenantService(tenantRepo),
		services.NewUserService(userRepo),
		services.NewRoleService(roleRepo),
	)

	return nil
}
