// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package document

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/oops"

	"github.com/fitchproof/fitchproof/internal/parse"
)

// The text format is line oriented. Leading bars give the subproof
// depth, a colon separates sentence from citation, and an optional
// leading "rulesets:" line names the rulesets:
//
//	rulesets: TFL_BASIC SYSTEM_K
//
//	□A : PR
//	| [] : PR
//	| A : []E 1
//	□A : []I 2-3
//
// "//" starts a comment. Blank lines are ignored and do not count
// toward proof line numbers.

// textLexer tokenizes one line of the text format. Bars and the colon
// are structural; everything else splits into whitespace-separated
// words re-joined by the loader.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Bar", Pattern: `\|`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Word", Pattern: `[^|:\s]+`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

// textRow is the grammar for one proof row.
type textRow struct {
	Bars     []string `parser:"@Bar*"`
	Sentence []string `parser:"@Word+"`
	Citation []string `parser:"':' @Word*"`
}

// textHeader is the grammar for the ruleset header line.
type textHeader struct {
	Names []string `parser:"'rulesets' ':' @Word+"`
}

var (
	rowParser    = participle.MustBuild[textRow](participle.Lexer(textLexer))
	headerParser = participle.MustBuild[textHeader](participle.Lexer(textLexer))
)

// ParseText parses a text-format document.
func ParseText(src string) (*Document, error) {
	doc := &Document{}
	sawContent := false

	for i, raw := range strings.Split(src, "\n") {
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !sawContent {
			if h, err := headerParser.ParseString("", line); err == nil {
				doc.Rulesets = h.Names
				sawContent = true
				continue
			}
		}
		sawContent = true

		row, err := rowParser.ParseString("", line)
		if err != nil {
			return nil, oops.Code("BAD_DOCUMENT_LINE").
				With("line", i+1).
				Wrapf(err, "malformed proof line %d", i+1)
		}

		doc.Lines = append(doc.Lines, Line{
			Depth:    uint16(len(row.Bars)),
			Sentence: strings.Join(row.Sentence, " "),
			Citation: strings.Join(row.Citation, " "),
		})
	}

	return doc, nil
}

// FormatText renders a document in the text format with operator
// aliases rewritten to their canonical symbols.
func FormatText(d *Document) string {
	var b strings.Builder

	if len(d.Rulesets) > 0 {
		b.WriteString("rulesets: ")
		b.WriteString(strings.Join(d.Rulesets, " "))
		b.WriteString("\n\n")
	}

	for _, l := range d.Lines {
		b.WriteString(strings.Repeat("| ", int(l.Depth)))
		b.WriteString(parse.NormalizeOps(l.Sentence))
		b.WriteString(" : ")
		b.WriteString(parse.NormalizeOps(l.Citation))
		b.WriteString("\n")
	}
	return b.String()
}
