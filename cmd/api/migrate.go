package main

import (
	"context"
	"errors"
	"time"

	pg "venture-hub/internal/adapters/storage/postgres"
	"venture-hub/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el schema de Postgres (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required for migrate")
			}
			log := newLogger(cfg)

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout total de la migración")
	return cmd
}
