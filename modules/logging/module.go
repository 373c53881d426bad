package logging

import (
	"embed"

	"github.com/campuskit/campuskit/modules/logging/handlers"
	"github.com/campuskit/campuskit/modules/logging/infrastructure/persistence"
	"github.com/campuskit/campuskit/modules/logging/presentation/controllers"
	"github.com/campuskit/campuskit/modules/logging/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "logging"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterMigrations(m.Name(), MigrationFiles, "infrastructure/persistence/schema")

	app.RegisterServices(
		services.NewLogsService(persistence.NewAuditLogRepository()),
	)
	app.RegisterControllers(
		controllers.NewLogsController(app),
	)
	if configuration.Use().AuditLogEnabled {
		handlers.RegisterOrgUnitAuditHandler(app)
	}
	return nil
}
