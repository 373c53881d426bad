package orgunit

import (
	"embed"

	corepersistence "github.com/campuskit/campuskit/modules/core/infrastructure/persistence"
	"github.com/campuskit/campuskit/modules/orgunit/infrastructure/persistence"
	"github.com/campuskit/campuskit/modules/orgunit/presentation/controllers"
	"github.com/campuskit/campuskit/modules/orgunit/services"
	"github.com/campuskit/campuskit/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "orgunit"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterMigrations(m.Name(), MigrationFiles, "infrastructure/persistence/schema")

	unitRepo := persistence.NewOrgUnitRepository()
	memberRepo := persistence.NewOrgUnitMemberRepository()
	assignmentRepo := persistence.NewOrgUnitRoleAssignmentRepository()
	userRepo := corepersistence.NewUserRepository()
	roleRepo := corepersistence.NewRoleRepository()

	app.RegisterServices(
		services.NewOrgUnitService(
			unitRepo,
			memberRepo,
			assignmentRepo,
			userRepo,
			roleRepo,
			app.EventPublisher(),
		),
	)

	app.RegisterControllers(
		controllers.NewOrgUnitAPIController(app),
	)

	return nil
}
