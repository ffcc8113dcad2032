package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/pkg/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "coinctl",
		Short:         "Command line tools for coin-tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("CONFIG_PATH"), "config file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logger level (debug|info|warn|error)")

	cmd.AddCommand(newListCmd(opts), newMigrateCmd(opts))
	return cmd
}

// load - конфиг и логгер в stderr, чтобы stdout оставался под вывод команды.
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFromPath(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Logger.Level = o.logLevel
	}
	return cfg, logger.NewWithWriter(os.Stderr, &cfg.Logger), nil
}
