// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitchproof/fitchproof/internal/check"
)

// NewRulesCmd creates the rules subcommand.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rulesets and their rule identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range check.RulesetNames() {
				rs, _ := check.RulesetByName(name)

				ids := make([]string, len(rs))
				for i, e := range rs {
					ids[i] = e.ID
				}
				cmd.Printf("%-12s %s\n", name, strings.Join(ids, " "))
			}
			cmd.Println()
			cmd.Println("Built-in: PR (premise), ? (placeholder)")
			return nil
		},
	}
}
