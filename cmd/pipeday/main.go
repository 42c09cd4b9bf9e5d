// pipeday CLI de operación: migraciones, datos de ejemplo, indicadores y tokens
// de desarrollo.
//
// Uso:
//
//	pipeday migrate
//	pipeday seed
//	pipeday stats
//	pipeday token --sub <id> --email <email>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pipeday-api/pkg/config"
	"github.com/jhoicas/pipeday-api/pkg/logger"
)

// app dependencias compartidas por los subcomandos; se cargan en PersistentPreRunE.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pipeday",
		Short:         "Herramientas de operación de Pipe Day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newStatsCmd(a),
		newTokenCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
