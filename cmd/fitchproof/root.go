// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/fitchproof/fitchproof/internal/config"
	"github.com/fitchproof/fitchproof/internal/logging"
	"github.com/fitchproof/fitchproof/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the fitchproof CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitchproof",
		Short: "fitchproof - a Fitch-style natural deduction proof checker",
		Long: `fitchproof checks Fitch-style natural deduction proofs in
propositional and modal logic against configurable rulesets.`,
		SilenceUsage: true,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewFmtCmd())
	cmd.AddCommand(NewRulesCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// loadConfig resolves configuration for a command: the --config file
// if given, the XDG default when present, then the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile, cmd.Flags())
	}
	return config.LoadOptional(xdg.DefaultConfigPath(), cmd.Flags())
}

// setupLogging configures the default slog logger from config.
func setupLogging(cfg *config.Config) {
	logging.SetDefault("fitchproof", version, cfg.Log.Format, cfg.Log.Level)
}
