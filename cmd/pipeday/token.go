package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pipeday-api/pkg/jwt"
)

// newTokenCmd emite un access token firmado con JWT_SECRET para probar la API en local.
func newTokenCmd(a *app) *cobra.Command {
	var sub, email, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Genera un access token de desarrollo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.App.Env == "production" {
				return fmt.Errorf("token: no disponible en producción")
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, sub, email, role, a.cfg.JWT.Issuer, a.cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "dev-operator", "subject (id del operador)")
	cmd.Flags().StringVar(&email, "email", "admin@pipeday.com", "email del operador")
	cmd.Flags().StringVar(&role, "role", "owner", "rol")
	return cmd
}
