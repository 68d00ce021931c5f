// @title venture-hub API
// @version 1.0
// @description Datos privados de startups: solicitudes de acceso, aprobación del founder, vencimiento y auditoría de lecturas.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "venture-hub",
		Short:         "venture-hub API",
		Long:          "API de datos privados de startups con flujo de solicitud y aprobación de acceso.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Sin subcomando = serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	return cmd
}
