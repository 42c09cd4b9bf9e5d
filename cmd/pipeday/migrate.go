package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pipeday-api/internal/infrastructure/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones pendientes")
				return nil
			}
			for _, name := range applied {
				a.log.Info().Str("migration", name).Msg("aplicada")
			}
			return nil
		},
	}
}
