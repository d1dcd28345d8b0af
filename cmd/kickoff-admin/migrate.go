// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", e.storages.DB.Driver())
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default modules and roles",
	Long: `Create the base, audit and courts modules and the default roles.

Existing rows are updated in place; the active flag of a module is left as
an administrator set it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		if err = e.services.ModuleService.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "modules and roles seeded")
		return nil
	},
}
