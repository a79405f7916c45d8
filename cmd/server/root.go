package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"hrms/internal/platform/config"
	"hrms/internal/platform/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "hrms",
		Short:        "HR administration API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Server.Env, cfg.Server.LogLevel)
			slog.SetDefault(a.log)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file (optional)")

	cmd.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newAuditCmd(a),
		newTokenCmd(a),
	)
	return cmd
}
