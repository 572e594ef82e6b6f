// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package integration_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fitchproof/fitchproof/internal/check"
	"github.com/fitchproof/fitchproof/internal/document"
	"github.com/fitchproof/fitchproof/internal/parse"
)

// checkText runs a text document through the whole pipeline: document
// parsing, ruleset resolution, proof parsing, and checking.
func checkText(src string) (*parse.Proof, error) {
	doc, err := document.ParseText(src)
	Expect(err).NotTo(HaveOccurred())

	sets, err := doc.ResolveRulesets()
	Expect(err).NotTo(HaveOccurred())

	proof, err := parse.ParseProof(doc.Rows())
	Expect(err).NotTo(HaveOccurred())

	checker := check.NewChecker()
	for _, rs := range sets {
		checker.AddRuleset(rs)
	}
	return proof, checker.CheckProof(proof)
}

var _ = Describe("Proof checking end to end", func() {
	It("accepts reiteration", func() {
		_, err := checkText(`rulesets: TFL_BASIC
A : PR
A : R 1
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts conjunction introduction in both orders", func() {
		_, err := checkText(`rulesets: TFL_BASIC
A : PR
B : PR
A ^ B : ^I 1 2
B ^ A : ^I 1 2
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts disjunction elimination over two subproofs", func() {
		_, err := checkText(`rulesets: TFL_BASIC
A v B : PR
C : PR
| A : PR
| C : R 2
| B : PR
| C : R 2
C : vE 1 3-4 5-6
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts necessity introduction and elimination in a strict subproof", func() {
		_, err := checkText(`rulesets: TFL_BASIC SYSTEM_K
[]A : PR
| [] : PR
| A : []E 1
[]A : []I 2-3
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects necessity elimination across two strict boundaries", func() {
		_, err := checkText(`rulesets: TFL_BASIC SYSTEM_K
[]A : PR
| [] : PR
| | [] : PR
| | A : []E 1
`)
		Expect(err).To(Equal(check.CheckErrors{{Line: 4, Err: check.BadUsage}}))
	})

	It("rejects RT reaching out of a strict subproof", func() {
		_, err := checkText(`rulesets: SYSTEM_T
[]A : PR
| [] : PR
| []A : RT 1
`)
		Expect(err).To(Equal(check.CheckErrors{{Line: 3, Err: check.Unavailable}}))
	})

	It("accepts S4 and S5 reiterations into strict subproofs", func() {
		_, err := checkText(`rulesets: SYSTEM_S4
[]A : PR
| [] : PR
| []A : R4 1
`)
		Expect(err).NotTo(HaveOccurred())

		_, err = checkText(`rulesets: SYSTEM_S5
~[]A : PR
| [] : PR
| ~[]A : R5 1
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts a conditional proof with nested subproofs", func() {
		_, err := checkText(`rulesets: TFL_BASIC
| C : PR
| | (D ^ A) v B : PR
| | C : R 1
| ((D ^ A) v B) -> C : ->I 2-3
C -> ([(D ^ A) v B] -> C) : ->I 1-4
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts derived rules over their basic counterparts", func() {
		_, err := checkText(`rulesets: TFL_BASIC TFL_DERIVED
A v B : PR
~A : PR
B : DS 1 2
~(A ^ C) : PR
~A v ~C : DeM 4
`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("marks placeholder proofs incomplete but valid", func() {
		proof, err := checkText(`rulesets: TFL_BASIC
A : PR
B : ?
A ^ B : ^I 1 2
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(proof.ContainsPlaceholders()).To(BeTrue())
	})

	It("reports every failing line at once", func() {
		_, err := checkText(`rulesets: TFL_BASIC
A : PR
B : R 1
C : R 1
`)
		Expect(err).To(Equal(check.CheckErrors{
			{Line: 2, Err: check.BadUsage},
			{Line: 3, Err: check.BadUsage},
		}))
	})
})

var _ = Describe("Alias normalization end to end", func() {
	It("is insensitive to operator spelling", func() {
		ascii := `rulesets: TFL_BASIC
A -> B : PR
A : PR
B : ->E 1 2
`
		unicode := `rulesets: TFL_BASIC
A → B : PR
A : PR
B : →E 1 2
`
		_, err := checkText(ascii)
		Expect(err).NotTo(HaveOccurred())
		_, err = checkText(unicode)
		Expect(err).NotTo(HaveOccurred())
	})

	It("normalizes idempotently", func() {
		src := "~(A ^ B) <-> (<>C v []D)"
		once := parse.NormalizeOps(src)
		Expect(parse.NormalizeOps(once)).To(Equal(once))
	})
})
