// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns combined output and the
// execution error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep the test hermetic: no user config file.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckCmd_ValidProof(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A : PR\nA : R 1\n")

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Proof is valid.")
}

func TestCheckCmd_InvalidProof(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A : PR\nB : R 1\n")

	out, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "line 2:")
}

func TestCheckCmd_ParseErrors(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A ^^ B : PR\n")

	out, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "line 1:")
}

func TestCheckCmd_DocumentRulesets(t *testing.T) {
	path := writeFile(t, "proof.fitch",
		"rulesets: SYSTEM_T\n[]A : PR\nA : RT 1\n")

	_, err := execute(t, "check", path)
	require.NoError(t, err)
}

func TestCheckCmd_RulesetFlag(t *testing.T) {
	path := writeFile(t, "proof.fitch", "[]A : PR\nA : RT 1\n")

	_, err := execute(t, "check", path)
	require.Error(t, err, "RT is not in the default rulesets")

	_, err = execute(t, "check", "--rulesets", "SYSTEM_T", path)
	require.NoError(t, err)
}

func TestCheckCmd_Placeholders(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A : PR\nB : ?\n")

	_, err := execute(t, "check", path)
	require.Error(t, err)

	out, err := execute(t, "check", "--placeholders-ok", path)
	require.NoError(t, err)
	assert.Contains(t, out, "incomplete")
}

func TestFmtCmd(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A ^ B : PR\n| ~A : PR\n")

	out, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A ∧ B : PR")
	assert.Contains(t, out, "| ¬A : PR")
}

func TestFmtCmd_Write(t *testing.T) {
	path := writeFile(t, "proof.fitch", "A ^ B : PR\n")

	_, err := execute(t, "fmt", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "A ∧ B : PR")
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)

	assert.Contains(t, out, "TFL_BASIC")
	assert.Contains(t, out, "SYSTEM_S5")
	assert.Contains(t, out, "∧I")
	assert.Contains(t, out, "□E")
	assert.Contains(t, out, "PR (premise)")
}
