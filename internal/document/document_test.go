// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitchproof/fitchproof/internal/check"
	"github.com/fitchproof/fitchproof/internal/document"
)

const sampleYAML = `rulesets:
  - TFL_BASIC
lines:
  - depth: 0
    sentence: A
    citation: PR
  - depth: 0
    sentence: A
    citation: R 1
`

const sampleJSON = `{
  "rulesets": ["TFL_BASIC", "TFL_DERIVED"],
  "lines": [
    {"depth": 0, "sentence": "A", "citation": "PR"},
    {"depth": 0, "sentence": "A v B", "citation": "vI 1"}
  ]
}`

func TestLoadYAML(t *testing.T) {
	doc, err := document.LoadYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"TFL_BASIC"}, doc.Rulesets)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "R 1", doc.Lines[1].Citation)
}

func TestLoadYAML_UnknownField(t *testing.T) {
	_, err := document.LoadYAML([]byte("liness: []\n"))
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	doc, err := document.LoadJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"TFL_BASIC", "TFL_DERIVED"}, doc.Rulesets)
	require.Len(t, doc.Lines, 2)
}

func TestLoadJSON_SchemaViolation(t *testing.T) {
	// "sentence" is required on every line.
	_, err := document.LoadJSON([]byte(`{"lines": [{"depth": 0, "citation": "PR"}]}`))
	assert.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	schema, err := document.GenerateSchema()
	require.NoError(t, err)

	s := string(schema)
	assert.Contains(t, s, document.SchemaID)
	assert.Contains(t, s, `"sentence"`)
	assert.Contains(t, s, `"citation"`)
	assert.Contains(t, s, `"rulesets"`)
}

func TestRows(t *testing.T) {
	doc, err := document.LoadYAML([]byte(sampleYAML))
	require.NoError(t, err)

	rows := doc.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Sentence)
	assert.Equal(t, "PR", rows[0].Citation)
	assert.Equal(t, uint16(0), rows[0].Depth)
}

func TestResolveRulesets(t *testing.T) {
	doc := &document.Document{Rulesets: []string{"TFL_BASIC", "SYSTEM_K"}}

	sets, err := doc.ResolveRulesets()
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, check.TFLBasic, sets[0])

	doc.Rulesets = append(doc.Rulesets, "SYSTEM_Q")
	_, err = doc.ResolveRulesets()
	assert.Error(t, err)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	fitch := filepath.Join(dir, "proof.fitch")
	require.NoError(t, os.WriteFile(fitch, []byte("A : PR\n"), 0o600))

	yml := filepath.Join(dir, "proof.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(sampleYAML), 0o600))

	jsn := filepath.Join(dir, "proof.json")
	require.NoError(t, os.WriteFile(jsn, []byte(sampleJSON), 0o600))

	for _, path := range []string{fitch, yml, jsn} {
		doc, err := document.Load(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, doc.Lines)
	}

	_, err := document.Load(filepath.Join(dir, "missing.fitch"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "proof.toml")
	require.NoError(t, os.WriteFile(bad, []byte(""), 0o600))
	_, err = document.Load(bad)
	assert.Error(t, err)
}
