package main

import (
	"github.com/spf13/cobra"

	coreseed "github.com/campuskit/campuskit/modules/core/seed"
	orgunitseed "github.com/campuskit/campuskit/modules/orgunit/seed"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed a local development tenant with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := app.Migrations().Up(cmd.Context()); err != nil {
				return err
			}

			seeder := application.NewSeeder()
			seeder.Register(coreseed.DevTenant, orgunitseed.DemoTree)
			return seeder.Seed(composables.WithPool(cmd.Context(), pool), app)
		},
	}
}
