package modules

import (
	"github.com/campuskit/campuskit/modules/core"
	"github.com/campuskit/campuskit/modules/logging"
	"github.com/campuskit/campuskit/modules/orgunit"
	"github.com/campuskit/campuskit/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	orgunit.NewModule(),
	logging.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := app.RegisterModule(module); err != nil {
			return err
		}
	}
	return nil
}
