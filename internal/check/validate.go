// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"github.com/fitchproof/fitchproof/internal/parse"
)

// validate runs the structural floor shared by every rule, in a fixed
// order, then delegates to the rule's own predicate:
//
//  1. citation arity
//  2. citation argument kinds
//  3. citation bounds (no self, future, or missing lines)
//  4. subproof well-formedness for every cited range
//  5. accessibility of every cited line and subproof
//  6. strict-zone discipline
//  7. the rule's syntactic predicate
func validate(r Rule, p *parse.Proof, l *parse.Line) error {
	cited := l.CitedLines()
	ord := r.LineOrd()

	if len(ord) != len(cited) {
		return BadLineCount
	}

	for i, kind := range ord {
		if cited[i].Kind != kind {
			return BadLineType
		}
	}

	// Reject citations of the current line, future lines, or lines that
	// do not exist. Range starts below 1 are caught here too.
	for _, ln := range cited {
		switch ln.Kind {
		case parse.One:
			if n := ln.N(); n < 1 || n >= l.N {
				return BadLine
			}
		case parse.Many:
			if ln.S < 1 || ln.E < 2 || ln.E >= l.N {
				return BadLine
			}
		}
	}

	for _, ln := range cited {
		if ln.Kind != parse.Many {
			continue
		}
		if !wellFormedSubproof(p, ln.S, ln.E) {
			return BadRange
		}
	}

	sentAcc, subAcc := accessibility(p, l, r.StrictOnly())
	for _, ln := range cited {
		switch ln.Kind {
		case parse.One:
			if !sentAcc[ln.N()-1] {
				return Unavailable
			}
		case parse.Many:
			// Well-formedness already pinned the whole range to the
			// start's frame, so the start carries the decision.
			if !subAcc[ln.S-1] {
				return Unavailable
			}
		}
	}

	inStrict := p.StrictZone(l.N)
	if r.StrictOnly() && !inStrict {
		return StrictOutside
	}
	if !r.StrictOnly() && !l.IsPremise() && inStrict {
		return RelaxedInside
	}

	return r.IsRight(p, l)
}

// wellFormedSubproof reports whether [s, e] is a closed subproof: both
// endpoints share a depth of at least one, no interior line is
// shallower, and the line after the end either dedents or opens a new
// premise.
func wellFormedSubproof(p *parse.Proof, s, e uint16) bool {
	sd := p.Line(s).D
	ed := p.Line(e).D

	if sd < 1 || ed < 1 || sd != ed {
		return false
	}

	for n := s; n <= e; n++ {
		if p.Line(n).D < sd {
			return false
		}
	}

	// Bounds checking already guaranteed e+1 exists.
	next := p.Line(e + 1)
	if next.D >= ed && !next.IsPremise() {
		return false
	}

	return true
}

// accessibility computes, relative to line l, which earlier sentences
// and which earlier subproofs may be cited. Both scans walk backward
// with a ceiling initialized to the current depth.
//
// For rules that are not strict-only, passing a □-signal line at or
// below the ceiling ends the scan: reasoning inside a strict subproof
// cannot reach material from outside its world. Strict-only rules see
// through that boundary and bound their reach with the strict-nesting
// walk instead.
func accessibility(p *parse.Proof, l *parse.Line, strictRule bool) (sentAcc, subAcc []bool) {
	sentAcc = make([]bool, p.Len())
	subAcc = make([]bool, p.Len())

	ceil := l.D
	for n := int(l.N) - 1; n >= 1; n-- {
		ln := p.Line(uint16(n))

		if ln.D == ceil {
			sentAcc[n-1] = true
		} else if ln.D < ceil {
			sentAcc[n-1] = true
			ceil--
		}

		if !strictRule && parse.IsNecSignal(ln.S) && ln.D <= ceil {
			break
		}
	}

	ceil = l.D
	for n := int(l.N) - 1; n >= 1; n-- {
		ln := p.Line(uint16(n))

		if ln.D == ceil+1 && ln.IsPremise() {
			subAcc[n-1] = true
		} else if ln.D < ceil {
			ceil--
		}

		if !strictRule && parse.IsNecSignal(ln.S) && ln.D <= ceil {
			break
		}
	}

	return sentAcc, subAcc
}
