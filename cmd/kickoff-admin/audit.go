// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpleonesz/kick-off-v2/internal/workers"
)

var auditFlags struct {
	days int
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Maintain the audit log",
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete audit entries older than the retention window",
	Long: `Delete audit entries older than the retention window.

The window defaults to AUDIT_RETENTION_DAYS; --days overrides it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.Close()

		audit := e.cfg.Audit
		if cmd.Flags().Changed("days") {
			audit.RetentionDays = auditFlags.days
		}
		if audit.RetentionDays <= 0 {
			return errors.New("retention is disabled, pass --days to prune anyway")
		}

		n, err := workers.NewAuditPruner(e.storages.DB, audit, nil).Prune(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d audit entries older than %d days deleted\n", n, audit.RetentionDays)
		return nil
	},
}

func init() {
	auditPruneCmd.Flags().IntVar(&auditFlags.days, "days", 0, "retention window in days")
	auditCmd.AddCommand(auditPruneCmd)
}
