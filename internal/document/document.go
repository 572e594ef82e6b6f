// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

// Package document loads proof documents from their interchange
// encodings: the line-oriented text format, YAML, and schema-validated
// JSON. A document is the raw material handed to the proof parser plus
// the rulesets the proof should be checked under.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/fitchproof/fitchproof/internal/check"
	"github.com/fitchproof/fitchproof/internal/parse"
)

// Line is one proof row as written in a document.
type Line struct {
	Depth    uint16 `yaml:"depth" json:"depth" jsonschema:"minimum=0"`
	Sentence string `yaml:"sentence" json:"sentence" jsonschema:"required,minLength=1"`
	Citation string `yaml:"citation" json:"citation" jsonschema:"required,minLength=1"`
}

// Document is a proof plus the rulesets it should be checked under.
type Document struct {
	Rulesets []string `yaml:"rulesets,omitempty" json:"rulesets,omitempty" jsonschema:"uniqueItems=true"`
	Lines    []Line   `yaml:"lines" json:"lines" jsonschema:"required"`
}

// Rows converts the document lines into proof parser input.
func (d *Document) Rows() []parse.Row {
	rows := make([]parse.Row, len(d.Lines))
	for i, l := range d.Lines {
		rows[i] = parse.Row{Depth: l.Depth, Sentence: l.Sentence, Citation: l.Citation}
	}
	return rows
}

// ResolveRulesets maps the document's ruleset names onto installable
// rulesets. Unknown names are an error.
func (d *Document) ResolveRulesets() ([]check.Ruleset, error) {
	sets := make([]check.Ruleset, 0, len(d.Rulesets))
	for _, name := range d.Rulesets {
		rs, ok := check.RulesetByName(name)
		if !ok {
			return nil, oops.Code("UNKNOWN_RULESET").
				With("ruleset", name).
				With("known", check.RulesetNames()).
				Errorf("unknown ruleset %q", name)
		}
		sets = append(sets, rs)
	}
	return sets, nil
}

// Load reads a document from disk, picking the decoder by extension:
// .fitch and .txt are the text format, .yaml/.yml is YAML, and .json
// is JSON validated against the document schema.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("READ_FAILED").With("path", path).Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".fitch", ".txt":
		return ParseText(string(data))
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".json":
		return LoadJSON(data)
	default:
		return nil, oops.Code("UNKNOWN_FORMAT").
			With("path", path).
			Errorf("unrecognized document extension %q", filepath.Ext(path))
	}
}
