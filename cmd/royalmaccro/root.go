// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ROYALMACCRO CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "royalmaccro",
		Short: "ROYALMACCRO - identity and session service",
		Long: `ROYALMACCRO is the identity and session-consistency service for the
game: registration, login, presence tracking, and progress resets over a
JSON/HTTP API backed by PostgreSQL.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
