package main

import (
	"github.com/spf13/cobra"

	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/db"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply storage migrations for the configured driver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			cfg.Storage.AutoMigrate = true
			if cfg.Storage.Driver == "memory" {
				log.Info("memory storage has no schema, nothing to migrate")
				return nil
			}
			kv, err := db.OpenKV(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			log.Info("migrations applied", "driver", cfg.Storage.Driver)
			return kv.Close()
		},
	}
}
