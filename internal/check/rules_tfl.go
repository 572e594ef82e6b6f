// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"github.com/fitchproof/fitchproof/internal/parse"
)

// Rule embedding bases carrying the strictness default.
type relaxed struct{}

func (relaxed) StrictOnly() bool { return false }

type strictOnly struct{}

func (strictOnly) StrictOnly() bool { return true }

// Shared argument-shape declarations.
var (
	ordOne         = []parse.ArgKind{parse.One}
	ordOneOne      = []parse.ArgKind{parse.One, parse.One}
	ordMany        = []parse.ArgKind{parse.Many}
	ordManyMany    = []parse.ArgKind{parse.Many, parse.Many}
	ordOneManyMany = []parse.ArgKind{parse.One, parse.Many, parse.Many}
)

// reiteration: R. The cited sentence recurs unchanged.
type reiteration struct{ relaxed }

func (reiteration) LineOrd() []parse.ArgKind { return ordOne }

func (reiteration) IsRight(p *parse.Proof, l *parse.Line) error {
	if !l.CitedSentence(p, 0).Equal(l.S) {
		return BadUsage
	}
	return nil
}

// conjunctionIntr: ∧I. Both conjuncts are cited, in either order.
type conjunctionIntr struct{ relaxed }

func (conjunctionIntr) LineOrd() []parse.ArgKind { return ordOneOne }

func (conjunctionIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	a := l.CitedSentence(p, 0)
	b := l.CitedSentence(p, 1)

	con, ok := l.S.(*parse.Con)
	if !ok {
		return BadUsage
	}
	if (con.L.Equal(a) || con.L.Equal(b)) && (con.R.Equal(a) || con.R.Equal(b)) {
		return nil
	}
	return BadUsage
}

// conjunctionElim: ∧E. Either conjunct of the cited conjunction.
type conjunctionElim struct{ relaxed }

func (conjunctionElim) LineOrd() []parse.ArgKind { return ordOne }

func (conjunctionElim) IsRight(p *parse.Proof, l *parse.Line) error {
	con, ok := l.CitedSentence(p, 0).(*parse.Con)
	if !ok {
		return BadUsage
	}
	if con.L.Equal(l.S) || con.R.Equal(l.S) {
		return nil
	}
	return BadUsage
}

// disjunctionIntr: ∨I. The cited sentence is one disjunct.
type disjunctionIntr struct{ relaxed }

func (disjunctionIntr) LineOrd() []parse.ArgKind { return ordOne }

func (disjunctionIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	source := l.CitedSentence(p, 0)

	dis, ok := l.S.(*parse.Dis)
	if !ok {
		return BadUsage
	}
	if dis.L.Equal(source) || dis.R.Equal(source) {
		return nil
	}
	return BadUsage
}

// disjunctionElim: ∨E. Two subproofs assume the disjuncts (in either
// order) and both conclude the current sentence.
type disjunctionElim struct{ relaxed }

func (disjunctionElim) LineOrd() []parse.ArgKind { return ordOneManyMany }

func (disjunctionElim) IsRight(p *parse.Proof, l *parse.Line) error {
	dis, ok := l.CitedSentence(p, 0).(*parse.Dis)
	if !ok {
		return BadUsage
	}

	p1, c1 := l.CitedSubproof(p, 1)
	p2, c2 := l.CitedSubproof(p, 2)

	if !c1.Equal(l.S) || !c2.Equal(l.S) {
		return BadUsage
	}
	if (p1.Equal(dis.L) && p2.Equal(dis.R)) || (p1.Equal(dis.R) && p2.Equal(dis.L)) {
		return nil
	}
	return BadUsage
}

// conditionalIntr: →I. The cited subproof runs assumption to
// conclusion of the conditional.
type conditionalIntr struct{ relaxed }

func (conditionalIntr) LineOrd() []parse.ArgKind { return ordMany }

func (conditionalIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	assum, concl := l.CitedSubproof(p, 0)

	imp, ok := l.S.(*parse.Imp)
	if !ok {
		return BadUsage
	}
	if imp.L.Equal(assum) && imp.R.Equal(concl) {
		return nil
	}
	return BadUsage
}

// conditionalElim: →E. Modus ponens, citations in either order.
type conditionalElim struct{ relaxed }

func (conditionalElim) LineOrd() []parse.ArgKind { return ordOneOne }

func (conditionalElim) IsRight(p *parse.Proof, l *parse.Line) error {
	a := l.CitedSentence(p, 0)
	b := l.CitedSentence(p, 1)

	if imp, ok := a.(*parse.Imp); ok {
		if imp.L.Equal(b) && imp.R.Equal(l.S) {
			return nil
		}
	}
	if imp, ok := b.(*parse.Imp); ok {
		if imp.L.Equal(a) && imp.R.Equal(l.S) {
			return nil
		}
	}
	return BadUsage
}

// biconditionalIntr: ↔I. Two subproofs derive each side from the
// other; either subproof may come first.
type biconditionalIntr struct{ relaxed }

func (biconditionalIntr) LineOrd() []parse.ArgKind { return ordManyMany }

func (biconditionalIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	p1, c1 := l.CitedSubproof(p, 0)
	p2, c2 := l.CitedSubproof(p, 1)

	bic, ok := l.S.(*parse.Bic)
	if !ok {
		return BadUsage
	}
	if bic.L.Equal(p1) && bic.R.Equal(p2) && bic.L.Equal(c2) && bic.R.Equal(c1) {
		return nil
	}
	if bic.L.Equal(p2) && bic.R.Equal(p1) && bic.L.Equal(c1) && bic.R.Equal(c2) {
		return nil
	}
	return BadUsage
}

// biconditionalElim: ↔E. One side of the cited biconditional yields
// the other.
type biconditionalElim struct{ relaxed }

func (biconditionalElim) LineOrd() []parse.ArgKind { return ordOneOne }

func (biconditionalElim) IsRight(p *parse.Proof, l *parse.Line) error {
	bic, ok := l.CitedSentence(p, 0).(*parse.Bic)
	if !ok {
		return BadUsage
	}
	other := l.CitedSentence(p, 1)

	if (bic.L.Equal(other) && bic.R.Equal(l.S)) || (bic.R.Equal(other) && bic.L.Equal(l.S)) {
		return nil
	}
	return BadUsage
}

// negationIntr: ¬I. The cited subproof runs the assumption into
// contradiction.
type negationIntr struct{ relaxed }

func (negationIntr) LineOrd() []parse.ArgKind { return ordMany }

func (negationIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	assum, concl := l.CitedSubproof(p, 0)

	if !parse.IsBotSignal(concl) {
		return BadUsage
	}
	if neg, ok := l.S.(*parse.Neg); ok && neg.X.Equal(assum) {
		return nil
	}
	return BadUsage
}

// negationElim: ¬E. A sentence and its negation, in either order,
// yield the contradiction sign.
type negationElim struct{ relaxed }

func (negationElim) LineOrd() []parse.ArgKind { return ordOneOne }

func (negationElim) IsRight(p *parse.Proof, l *parse.Line) error {
	a := l.CitedSentence(p, 0)
	b := l.CitedSentence(p, 1)

	if !parse.IsBotSignal(l.S) {
		return BadUsage
	}
	if neg, ok := a.(*parse.Neg); ok && neg.X.Equal(b) {
		return nil
	}
	if neg, ok := b.(*parse.Neg); ok && neg.X.Equal(a) {
		return nil
	}
	return BadUsage
}

// indirectProof: IP. Assuming the negation runs into contradiction.
type indirectProof struct{ relaxed }

func (indirectProof) LineOrd() []parse.ArgKind { return ordMany }

func (indirectProof) IsRight(p *parse.Proof, l *parse.Line) error {
	assum, concl := l.CitedSubproof(p, 0)

	neg, ok := assum.(*parse.Neg)
	if !ok {
		return BadUsage
	}
	if !parse.IsBotSignal(concl) {
		return BadUsage
	}
	if !neg.X.Equal(l.S) {
		return BadUsage
	}
	return nil
}

// explosion: X. Anything follows from the contradiction sign.
type explosion struct{ relaxed }

func (explosion) LineOrd() []parse.ArgKind { return ordOne }

func (explosion) IsRight(p *parse.Proof, l *parse.Line) error {
	if !parse.IsBotSignal(l.CitedSentence(p, 0)) {
		return BadUsage
	}
	return nil
}
