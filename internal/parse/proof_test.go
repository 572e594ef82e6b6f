// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitchproof/fitchproof/internal/parse"
)

func rows(rs ...parse.Row) []parse.Row { return rs }

func row(depth uint16, sentence, citation string) parse.Row {
	return parse.Row{Depth: depth, Sentence: sentence, Citation: citation}
}

func TestParseProof_Valid(t *testing.T) {
	p, err := parse.ParseProof(rows(
		row(0, "A", "PR"),
		row(0, "B", "PR"),
		row(0, "A ^ B", "^I 1 2"),
	))
	require.NoError(t, err)

	require.Equal(t, 3, p.Len())
	assert.Equal(t, uint16(1), p.Line(1).N)
	assert.Equal(t, uint16(3), p.Line(3).N)
	assert.Equal(t, uint16(0), p.Line(3).D)
	assert.True(t, p.Line(3).S.Equal(mustSentence(t, "A ∧ B")))
	assert.Equal(t, "∧I", p.Line(3).C.Rule)

	assert.Nil(t, p.Line(0))
	assert.Nil(t, p.Line(4))
}

func TestParseProof_CollectsAllErrors(t *testing.T) {
	_, err := parse.ParseProof(rows(
		row(0, "A", "PR"),
		row(0, "A ^^ B", "1"),
		row(0, "", "R 1"),
	))
	require.Error(t, err)

	perrs, ok := err.(parse.ParseErrors)
	require.True(t, ok)
	require.Len(t, perrs, 3)

	// Line 2 reports its sentence error before its citation error.
	assert.Equal(t, uint16(2), perrs[0].Line)
	assert.Equal(t, parse.Ambiguous, perrs[0].Err.Code)
	assert.Equal(t, uint16(2), perrs[1].Line)
	assert.Equal(t, parse.MissingRule, perrs[1].Err.Code)
	assert.Equal(t, uint16(3), perrs[2].Line)
	assert.Equal(t, parse.EmptySentence, perrs[2].Err.Code)
}

func TestParseProof_StrictZones(t *testing.T) {
	p, err := parse.ParseProof(rows(
		row(0, "[]A", "PR"),
		row(1, "[]", "PR"),
		row(1, "A", "[]E 1"),
		row(0, "[]A", "[]I 2-3"),
	))
	require.NoError(t, err)

	assert.False(t, p.StrictZone(1))
	assert.True(t, p.StrictZone(2))
	assert.True(t, p.StrictZone(3))
	assert.False(t, p.StrictZone(4))
}

func TestParseProof_NestedStrictZones(t *testing.T) {
	p, err := parse.ParseProof(rows(
		row(0, "[]A", "PR"),
		row(1, "[]", "PR"),
		row(2, "[]", "PR"),
		row(2, "A", "?"),
		row(1, "B", "?"),
		row(0, "C", "?"),
	))
	require.NoError(t, err)

	// Exiting the inner strict subproof still leaves the outer one.
	assert.True(t, p.StrictZone(2))
	assert.True(t, p.StrictZone(3))
	assert.True(t, p.StrictZone(4))
	assert.True(t, p.StrictZone(5))
	assert.False(t, p.StrictZone(6))
}

func TestParseProof_BadNecessity(t *testing.T) {
	_, err := parse.ParseProof(rows(
		row(0, "A", "PR"),
		row(1, "[]", "R 1"),
	))
	require.Error(t, err)

	perrs, ok := err.(parse.ParseErrors)
	require.True(t, ok)
	require.Len(t, perrs, 1)
	assert.Equal(t, uint16(2), perrs[0].Line)
	assert.Equal(t, parse.BadNecessity, perrs[0].Err.Code)
}

func TestParseProof_Placeholders(t *testing.T) {
	p, err := parse.ParseProof(rows(
		row(0, "A", "PR"),
		row(0, "B", "?"),
	))
	require.NoError(t, err)
	assert.True(t, p.ContainsPlaceholders())
	assert.True(t, p.Line(2).IsPremise())

	q, err := parse.ParseProof(rows(row(0, "A", "PR")))
	require.NoError(t, err)
	assert.False(t, q.ContainsPlaceholders())
}

// A □-signal line justified by the placeholder counts as a premise.
func TestParseProof_PlaceholderOpensStrictZone(t *testing.T) {
	p, err := parse.ParseProof(rows(
		row(0, "[]A", "PR"),
		row(1, "[]", "?"),
		row(1, "A", "[]E 1"),
	))
	require.NoError(t, err)
	assert.True(t, p.StrictZone(2))
	assert.True(t, p.ContainsPlaceholders())
}
