// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitchproof/fitchproof/internal/document"
)

// NewFmtCmd creates the fmt subcommand.
func NewFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a text proof document with canonical operator symbols",
		Long: `Rewrite a text-format proof document so operator shorthands like
^ v -> <-> ~ [] <> appear as their canonical Unicode symbols.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back instead of printing it")

	return cmd
}

func runFmt(cmd *cobra.Command, path string, write bool) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".fitch" && ext != ".txt" {
		return fmt.Errorf("fmt only handles text documents, got %q", ext)
	}

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	out := document.FormatText(doc)
	if !write {
		cmd.Print(out)
		return nil
	}

	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
