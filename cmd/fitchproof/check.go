// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fitchproof/fitchproof/internal/check"
	"github.com/fitchproof/fitchproof/internal/document"
	"github.com/fitchproof/fitchproof/internal/parse"
)

// NewCheckCmd creates the check subcommand.
func NewCheckCmd() *cobra.Command {
	var placeholdersOK bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a proof document",
		Long: `Check a proof document against its rulesets.

The document format is picked by extension: .fitch/.txt for the text
format, .yaml/.yml for YAML, .json for schema-validated JSON. Rulesets
named in the document win over configured ones.

Exits non-zero when the proof fails to parse or check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			return runCheck(cmd, args[0], cfg.Rulesets, placeholdersOK)
		},
	}

	cmd.Flags().StringSlice("rulesets", nil, "rulesets to check against (overrides config)")
	cmd.Flags().BoolVar(&placeholdersOK, "placeholders-ok", false, "do not fail proofs containing '?' placeholders")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "", "log format (json or text)")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, defaultSets []string, placeholdersOK bool) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	if len(doc.Rulesets) == 0 {
		doc.Rulesets = defaultSets
	}

	sets, err := doc.ResolveRulesets()
	if err != nil {
		return err
	}

	proof, err := parse.ParseProof(doc.Rows())
	if err != nil {
		var perrs parse.ParseErrors
		if errors.As(err, &perrs) {
			for _, le := range perrs {
				cmd.Printf("line %d: %s\n", le.Line, le.Err)
			}
		}
		return fmt.Errorf("%s: proof failed to parse", path)
	}

	checker := check.NewChecker()
	for _, rs := range sets {
		checker.AddRuleset(rs)
	}

	if err := checker.CheckProof(proof); err != nil {
		var cerrs check.CheckErrors
		if errors.As(err, &cerrs) {
			for _, v := range cerrs {
				cmd.Printf("line %d: %s\n", v.Line, v.Err.Error())
			}
		}
		return fmt.Errorf("%s: proof is not valid", path)
	}

	if proof.ContainsPlaceholders() {
		if !placeholdersOK {
			return fmt.Errorf("%s: proof is incomplete (contains placeholders)", path)
		}
		cmd.Println("Proof is valid but incomplete.")
		slog.Info("proof checked", "path", path, "lines", proof.Len(), "incomplete", true)
		return nil
	}

	cmd.Println("Proof is valid.")
	slog.Info("proof checked", "path", path, "lines", proof.Len(), "incomplete", false)
	return nil
}
