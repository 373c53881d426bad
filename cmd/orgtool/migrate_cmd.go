package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			return app.Migrations().Up(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			return app.Migrations().Down(cmd.Context())
		},
	})

	return cmd
}
