package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hrms/internal/audit"
	auditpostgres "hrms/internal/audit/store/postgres"
	"hrms/internal/platform/postgres"
	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit trail maintenance",
	}

	var (
		retentionDays int
		exportPath    string
	)
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete audit records older than the retention period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := postgres.Connect(ctx, a.cfg.Database.Pool())
			if err != nil {
				return err
			}
			defer db.Close()

			days := retentionDays
			if days == 0 {
				days = a.cfg.Audit.RetentionDays
			}
			recorder := audit.NewRecorder(auditpostgres.New(db), audit.WithLogger(a.log))
			ctx = requestcontext.WithRequestID(ctx, "cli-audit-purge")
			res, err := recorder.Purge(ctx, domain.UserID{}, days)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
		},
	}
	purge.Flags().IntVar(&retentionDays, "retention-days", 0, "Retention in days (defaults to audit.retention_days)")
	cmd.AddCommand(purge)

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the audit trail to an XLSX workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := postgres.Connect(ctx, a.cfg.Database.Pool())
			if err != nil {
				return err
			}
			defer db.Close()

			f, err := os.Create(exportPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportPath, err)
			}
			defer f.Close()

			recorder := audit.NewRecorder(auditpostgres.New(db), audit.WithLogger(a.log))
			n, err := recorder.Export(ctx, audit.Filter{}, f)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "audit export written", "path", exportPath, "records", n)
			return nil
		},
	}
	export.Flags().StringVar(&exportPath, "out", "audit-logs.xlsx", "Output file")
	cmd.AddCommand(export)
	return cmd
}
