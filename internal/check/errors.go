// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"fmt"
	"strings"
)

// CheckError identifies why a line failed validation. Values are pure
// data; BadUsage is the uniform answer for "the rule itself was applied
// incorrectly" while the shared validator produces every other code.
type CheckError uint8

// Check failure codes.
const (
	NoSuchRule CheckError = iota + 1
	BadLineCount
	BadLineType
	BadUsage
	BadLine
	BadRange
	Unavailable
	StrictOutside
	RelaxedInside
)

func (e CheckError) Error() string {
	switch e {
	case NoSuchRule:
		return "cited a rule that does not exist or is badly formed"
	case BadLineCount:
		return "cited too few or too many lines for the specified rule"
	case BadLineType:
		return "cited a line range where a single line was expected (or vice versa)"
	case BadUsage:
		return "cited a rule that was used incorrectly"
	case BadLine:
		return "cited a current or future line, or a line that does not exist"
	case BadRange:
		return "cited a line range that does not correspond to a subproof"
	case Unavailable:
		return "cited an unavailable line or subproof"
	case StrictOutside:
		return "used a strict-subproof-only rule outside of a strict subproof"
	case RelaxedInside:
		return "used a disallowed rule inside of a strict subproof"
	default:
		return fmt.Sprintf("CheckError(%d)", uint8(e))
	}
}

// String returns the stable code name, for logs and API payloads.
func (e CheckError) String() string {
	switch e {
	case NoSuchRule:
		return "NoSuchRule"
	case BadLineCount:
		return "BadLineCount"
	case BadLineType:
		return "BadLineType"
	case BadUsage:
		return "BadUsage"
	case BadLine:
		return "BadLine"
	case BadRange:
		return "BadRange"
	case Unavailable:
		return "Unavailable"
	case StrictOutside:
		return "StrictOutside"
	case RelaxedInside:
		return "RelaxedInside"
	default:
		return fmt.Sprintf("CheckError(%d)", uint8(e))
	}
}

// Violation pairs a 1-based line number with its check failure.
type Violation struct {
	Line uint16
	Err  CheckError
}

// CheckErrors is the accumulated failure list for a proof, ordered by
// line number. A nil list means the proof checked out.
type CheckErrors []Violation

func (es CheckErrors) Error() string {
	parts := make([]string, len(es))
	for i, v := range es {
		parts[i] = fmt.Sprintf("line %d: %s", v.Line, v.Err.Error())
	}
	return strings.Join(parts, "; ")
}
