// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpleonesz/kick-off-v2/internal/service"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Switch feature modules on or off",
	Long: `Switch feature modules on or off.

The registry is read by the query layer: while the "audit" module is
inactive no audit entries are written. Running servers pick the change up
on their next registry refresh.`,
}

var moduleActivateCmd = &cobra.Command{
	Use:   "activate <code>",
	Short: "Activate a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchModule(cmd, args[0], service.ModuleService.Activate)
	},
}

var moduleDeactivateCmd = &cobra.Command{
	Use:   "deactivate <code>",
	Short: "Deactivate a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchModule(cmd, args[0], service.ModuleService.Deactivate)
	},
}

func init() {
	moduleCmd.AddCommand(moduleActivateCmd, moduleDeactivateCmd)
}

func switchModule(cmd *cobra.Command, code string, fn func(service.ModuleService, context.Context, string) error) error {
	e, err := openEnv(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err = fn(e.services.ModuleService, cmd.Context(), code); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "module %q %sd\n", code, cmd.Name())
	return nil
}
