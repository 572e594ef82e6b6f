// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"github.com/fitchproof/fitchproof/internal/parse"
)

// disjunctiveSyllogism: DS. A disjunction and the negation of one
// disjunct yield the other, citations in either order.
type disjunctiveSyllogism struct{ relaxed }

func (disjunctiveSyllogism) LineOrd() []parse.ArgKind { return ordOneOne }

func (disjunctiveSyllogism) IsRight(p *parse.Proof, l *parse.Line) error {
	a := l.CitedSentence(p, 0)
	b := l.CitedSentence(p, 1)

	if dsMatch(a, b, l.S) || dsMatch(b, a, l.S) {
		return nil
	}
	return BadUsage
}

func dsMatch(dis, negated, current parse.Sentence) bool {
	d, ok := dis.(*parse.Dis)
	if !ok {
		return false
	}
	n, ok := negated.(*parse.Neg)
	if !ok {
		return false
	}
	return (n.X.Equal(d.L) && current.Equal(d.R)) || (n.X.Equal(d.R) && current.Equal(d.L))
}

// modusTollens: MT. A conditional and the negation of its consequent
// yield the negation of its antecedent.
type modusTollens struct{ relaxed }

func (modusTollens) LineOrd() []parse.ArgKind { return ordOneOne }

func (modusTollens) IsRight(p *parse.Proof, l *parse.Line) error {
	a := l.CitedSentence(p, 0)
	b := l.CitedSentence(p, 1)

	neg, ok := l.S.(*parse.Neg)
	if !ok {
		return BadUsage
	}
	if mtMatch(a, b, neg) || mtMatch(b, a, neg) {
		return nil
	}
	return BadUsage
}

func mtMatch(imp, negated parse.Sentence, current *parse.Neg) bool {
	i, ok := imp.(*parse.Imp)
	if !ok {
		return false
	}
	n, ok := negated.(*parse.Neg)
	if !ok {
		return false
	}
	return current.X.Equal(i.L) && n.X.Equal(i.R)
}

// doubleNegationElim: DNE.
type doubleNegationElim struct{ relaxed }

func (doubleNegationElim) LineOrd() []parse.ArgKind { return ordOne }

func (doubleNegationElim) IsRight(p *parse.Proof, l *parse.Line) error {
	outer, ok := l.CitedSentence(p, 0).(*parse.Neg)
	if !ok {
		return BadUsage
	}
	inner, ok := outer.X.(*parse.Neg)
	if !ok {
		return BadUsage
	}
	if inner.X.Equal(l.S) {
		return nil
	}
	return BadUsage
}

// excludedMiddle: LEM. Two subproofs assuming a sentence and its
// negation share the current sentence as conclusion.
type excludedMiddle struct{ relaxed }

func (excludedMiddle) LineOrd() []parse.ArgKind { return ordManyMany }

func (excludedMiddle) IsRight(p *parse.Proof, l *parse.Line) error {
	p1, c1 := l.CitedSubproof(p, 0)
	p2, c2 := l.CitedSubproof(p, 1)

	if !c1.Equal(c2) {
		return BadUsage
	}
	if !parse.Negate(p1).Equal(p2) && !parse.Negate(p2).Equal(p1) {
		return BadUsage
	}
	if !l.S.Equal(c1) {
		return BadUsage
	}
	return nil
}

// deMorgan: DeM / DEM. Rewrites between ¬(a∧b) and ¬a∨¬b, and between
// ¬(a∨b) and ¬a∧¬b, in either direction.
type deMorgan struct{ relaxed }

func (deMorgan) LineOrd() []parse.ArgKind { return ordOne }

func (deMorgan) IsRight(p *parse.Proof, l *parse.Line) error {
	switch s := l.CitedSentence(p, 0).(type) {
	case *parse.Neg:
		switch inner := s.X.(type) {
		case *parse.Con:
			want := &parse.Dis{L: parse.Negate(inner.L), R: parse.Negate(inner.R)}
			if l.S.Equal(want) {
				return nil
			}
		case *parse.Dis:
			want := &parse.Con{L: parse.Negate(inner.L), R: parse.Negate(inner.R)}
			if l.S.Equal(want) {
				return nil
			}
		}
	case *parse.Con:
		ln, lok := s.L.(*parse.Neg)
		rn, rok := s.R.(*parse.Neg)
		if lok && rok {
			want := parse.Negate(&parse.Dis{L: ln.X, R: rn.X})
			if l.S.Equal(want) {
				return nil
			}
		}
	case *parse.Dis:
		ln, lok := s.L.(*parse.Neg)
		rn, rok := s.R.(*parse.Neg)
		if lok && rok {
			want := parse.Negate(&parse.Con{L: ln.X, R: rn.X})
			if l.S.Equal(want) {
				return nil
			}
		}
	}
	return BadUsage
}
