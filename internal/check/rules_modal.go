// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"github.com/fitchproof/fitchproof/internal/parse"
)

// strictNesting walks the lines from the cited position up to but
// excluding the current line, counting □-signal entries into strict
// subproofs against depth-decrease exits. More than one open level of
// strict descent means the rule reached across two world boundaries.
func strictNesting(p *parse.Proof, s, e uint16) error {
	var (
		depth uint16
		nest  uint16
	)
	for n := s; n < e; n++ {
		line := p.Line(n)

		switch {
		case parse.IsNecSignal(line.S):
			nest++
		case line.D < depth && nest > 0:
			nest--
		}
		depth = line.D
	}

	if nest > 1 {
		return BadUsage
	}
	return nil
}

// necessityIntr: □I. A strict subproof concluding c yields □c.
type necessityIntr struct{ relaxed }

func (necessityIntr) LineOrd() []parse.ArgKind { return ordMany }

func (necessityIntr) IsRight(p *parse.Proof, l *parse.Line) error {
	assum, concl := l.CitedSubproof(p, 0)

	if !parse.IsNecSignal(assum) {
		return BadUsage
	}
	nec, ok := l.S.(*parse.Nec)
	if !ok {
		return BadUsage
	}
	if nec.X.Equal(concl) {
		return nil
	}
	return BadUsage
}

// necessityElim: □E. Inside a strict subproof, □s yields s, reaching
// across at most one world boundary.
type necessityElim struct{ strictOnly }

func (necessityElim) LineOrd() []parse.ArgKind { return ordOne }

func (necessityElim) IsRight(p *parse.Proof, l *parse.Line) error {
	n := l.CitedLines()[0].N()

	nec, ok := l.CitedSentence(p, 0).(*parse.Nec)
	if !ok {
		return BadUsage
	}
	if err := strictNesting(p, n, l.N); err != nil {
		return err
	}
	if nec.X.Equal(l.S) {
		return nil
	}
	return BadUsage
}

// possibilityDef: Def◇. ◇x and ¬□¬x are interchangeable.
type possibilityDef struct{ relaxed }

func (possibilityDef) LineOrd() []parse.ArgKind { return ordOne }

func (possibilityDef) IsRight(p *parse.Proof, l *parse.Line) error {
	switch s := l.CitedSentence(p, 0).(type) {
	case *parse.Pos:
		// ◇x cited; current must be ¬□¬x.
		if x, ok := stripNegNecNeg(l.S); ok && s.X.Equal(x) {
			return nil
		}
	case *parse.Neg:
		// ¬□¬x cited; current must be ◇x.
		x, ok := stripNecNeg(s.X)
		if !ok {
			return BadUsage
		}
		pos, ok := l.S.(*parse.Pos)
		if !ok {
			return BadUsage
		}
		if x.Equal(pos.X) {
			return nil
		}
	}
	return BadUsage
}

// modalConversion: MC. ¬□x ↔ ◇¬x and ¬◇x ↔ □¬x, both directions.
type modalConversion struct{ relaxed }

func (modalConversion) LineOrd() []parse.ArgKind { return ordOne }

func (modalConversion) IsRight(p *parse.Proof, l *parse.Line) error {
	switch s := l.CitedSentence(p, 0).(type) {
	case *parse.Neg:
		switch inner := s.X.(type) {
		case *parse.Nec:
			// ¬□x cited; current must be ◇¬x.
			pos, ok := l.S.(*parse.Pos)
			if !ok {
				return BadUsage
			}
			neg, ok := pos.X.(*parse.Neg)
			if !ok {
				return BadUsage
			}
			if inner.X.Equal(neg.X) {
				return nil
			}
		case *parse.Pos:
			// ¬◇x cited; current must be □¬x.
			nec, ok := l.S.(*parse.Nec)
			if !ok {
				return BadUsage
			}
			neg, ok := nec.X.(*parse.Neg)
			if !ok {
				return BadUsage
			}
			if inner.X.Equal(neg.X) {
				return nil
			}
		}
	case *parse.Pos:
		// ◇¬x cited; current must be ¬□x.
		neg, ok := s.X.(*parse.Neg)
		if !ok {
			return BadUsage
		}
		if x, ok := stripNegNec(l.S); ok && neg.X.Equal(x) {
			return nil
		}
	case *parse.Nec:
		// □¬x cited; current must be ¬◇x.
		neg, ok := s.X.(*parse.Neg)
		if !ok {
			return BadUsage
		}
		cur, ok := l.S.(*parse.Neg)
		if !ok {
			return BadUsage
		}
		pos, ok := cur.X.(*parse.Pos)
		if !ok {
			return BadUsage
		}
		if neg.X.Equal(pos.X) {
			return nil
		}
	}
	return BadUsage
}

// ruleT: RT. □s yields s anywhere the cited line is reachable.
type ruleT struct{ relaxed }

func (ruleT) LineOrd() []parse.ArgKind { return ordOne }

func (ruleT) IsRight(p *parse.Proof, l *parse.Line) error {
	nec, ok := l.CitedSentence(p, 0).(*parse.Nec)
	if !ok {
		return BadUsage
	}
	if nec.X.Equal(l.S) {
		return nil
	}
	return BadUsage
}

// ruleFour: R4. Reiterates a sentence into a strict subproof across at
// most one world boundary.
type ruleFour struct{ strictOnly }

func (ruleFour) LineOrd() []parse.ArgKind { return ordOne }

func (ruleFour) IsRight(p *parse.Proof, l *parse.Line) error {
	n := l.CitedLines()[0].N()

	if err := strictNesting(p, n, l.N); err != nil {
		return err
	}
	if l.CitedSentence(p, 0).Equal(l.S) {
		return nil
	}
	return BadUsage
}

// ruleFive: R5. Like R4 but restricted to sentences of the form ¬□x.
type ruleFive struct{ strictOnly }

func (ruleFive) LineOrd() []parse.ArgKind { return ordOne }

func (ruleFive) IsRight(p *parse.Proof, l *parse.Line) error {
	n := l.CitedLines()[0].N()
	s := l.CitedSentence(p, 0)

	neg, ok := s.(*parse.Neg)
	if !ok {
		return BadUsage
	}
	if _, ok := neg.X.(*parse.Nec); !ok {
		return BadUsage
	}
	if err := strictNesting(p, n, l.N); err != nil {
		return err
	}
	if s.Equal(l.S) {
		return nil
	}
	return BadUsage
}

// stripNegNecNeg unwraps ¬□¬x, reporting success.
func stripNegNecNeg(s parse.Sentence) (parse.Sentence, bool) {
	neg, ok := s.(*parse.Neg)
	if !ok {
		return nil, false
	}
	return stripNecNeg(neg.X)
}

// stripNecNeg unwraps □¬x, reporting success.
func stripNecNeg(s parse.Sentence) (parse.Sentence, bool) {
	nec, ok := s.(*parse.Nec)
	if !ok {
		return nil, false
	}
	neg, ok := nec.X.(*parse.Neg)
	if !ok {
		return nil, false
	}
	return neg.X, true
}

// stripNegNec unwraps ¬□x, reporting success.
func stripNegNec(s parse.Sentence) (parse.Sentence, bool) {
	neg, ok := s.(*parse.Neg)
	if !ok {
		return nil, false
	}
	nec, ok := neg.X.(*parse.Nec)
	if !ok {
		return nil, false
	}
	return nec.X, true
}
