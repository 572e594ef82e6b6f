// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package parse

// Row is one line of raw proof input: the subproof nesting depth, the
// sentence source text, and the citation source text.
type Row struct {
	Depth    uint16
	Sentence string
	Citation string
}

// Line is one parsed proof line. N is the 1-based position in the
// proof; D is the nesting depth of the enclosing subproof.
type Line struct {
	S Sentence
	C *Citation
	N uint16
	D uint16
}

// CitedLines returns the citation arguments in citation order.
func (l *Line) CitedLines() []LineNumber {
	return l.C.Args
}

// IsPremise reports whether the line is justified as a premise. The
// placeholder rule counts: it is validated exactly like a premise.
func (l *Line) IsPremise() bool {
	return l.C.Rule == PremiseRule || l.C.Rule == PlaceholderRule
}

// CitedSentence returns the sentence of the single-line citation
// argument at index i. Callers must have bounds-checked the citation.
func (l *Line) CitedSentence(p *Proof, i int) Sentence {
	return p.Line(l.C.Args[i].N()).S
}

// CitedSubproof returns the assumption and conclusion sentences of the
// range citation argument at index i.
func (l *Line) CitedSubproof(p *Proof, i int) (assumption, conclusion Sentence) {
	arg := l.C.Args[i]
	return p.Line(arg.S).S, p.Line(arg.E).S
}

// Proof is an ordered, immutable sequence of parsed lines together
// with the strict-zone membership bit for each line.
type Proof struct {
	lines        []*Line
	strict       []bool
	placeholders bool
}

// ParseProof parses raw rows into a proof. Parse failures for every
// row are collected and returned together as a ParseErrors value; the
// proof is only built when all rows parse.
func ParseProof(rows []Row) (*Proof, error) {
	var (
		lines []*Line
		errs  ParseErrors
	)

	for i, row := range rows {
		n := uint16(i + 1)

		s, serr := parseSentence(row.Sentence)
		c, cerr := parseCitation(row.Citation)

		if serr != nil {
			errs = append(errs, LineError{Line: n, Err: serr})
		}
		if cerr != nil {
			errs = append(errs, LineError{Line: n, Err: cerr})
		}
		if serr == nil && cerr == nil {
			lines = append(lines, &Line{S: s, C: c, N: n, D: row.Depth})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	p := &Proof{lines: lines}

	// The □ marker stands for entry into an arbitrary accessible world
	// and only makes sense as a subproof assumption.
	for _, l := range p.lines {
		if IsNecSignal(l.S) && !l.IsPremise() {
			errs = append(errs, LineError{Line: l.N, Err: parseErr(BadNecessity)})
		}
		if l.C.Rule == PlaceholderRule {
			p.placeholders = true
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	p.strict = strictZones(p.lines)
	return p, nil
}

// strictZones marks, for each line, membership in a subproof opened by
// a □-signal premise. Entering such a subproof raises the nesting
// count; leaving any subproof lowers it.
func strictZones(lines []*Line) []bool {
	zones := make([]bool, len(lines))

	var (
		nest      uint16
		prevDepth uint16
	)
	for i, l := range lines {
		switch {
		case IsNecSignal(l.S):
			nest++
		case l.D < prevDepth && nest > 0:
			nest--
		}
		zones[i] = nest > 0
		prevDepth = l.D
	}
	return zones
}

// Len returns the number of lines in the proof.
func (p *Proof) Len() int {
	return len(p.lines)
}

// Line returns the 1-based line n, or nil when out of range.
func (p *Proof) Line(n uint16) *Line {
	if n < 1 || int(n) > len(p.lines) {
		return nil
	}
	return p.lines[n-1]
}

// Lines returns the proof lines in order. The slice must not be
// modified.
func (p *Proof) Lines() []*Line {
	return p.lines
}

// StrictZone reports whether the 1-based line n lies inside a strict
// subproof.
func (p *Proof) StrictZone(n uint16) bool {
	if n < 1 || int(n) > len(p.strict) {
		return false
	}
	return p.strict[n-1]
}

// ContainsPlaceholders reports whether any line is justified by the
// placeholder rule. Such a proof may validate but is incomplete.
func (p *Proof) ContainsPlaceholders() bool {
	return p.placeholders
}
