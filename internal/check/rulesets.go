// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

// The installable rulesets. Identifiers are the stable textual tokens
// by which proofs cite rules; DeM and DEM alias the same rule value.
var (
	// TFLBasic is classical propositional inference.
	TFLBasic = Ruleset{
		{ID: "R", Rule: reiteration{}},
		{ID: "∧I", Rule: conjunctionIntr{}},
		{ID: "∧E", Rule: conjunctionElim{}},
		{ID: "∨I", Rule: disjunctionIntr{}},
		{ID: "∨E", Rule: disjunctionElim{}},
		{ID: "→I", Rule: conditionalIntr{}},
		{ID: "→E", Rule: conditionalElim{}},
		{ID: "↔I", Rule: biconditionalIntr{}},
		{ID: "↔E", Rule: biconditionalElim{}},
		{ID: "¬I", Rule: negationIntr{}},
		{ID: "¬E", Rule: negationElim{}},
		{ID: "IP", Rule: indirectProof{}},
		{ID: "X", Rule: explosion{}},
	}

	// TFLDerived holds the shortcut rules derivable from TFLBasic.
	TFLDerived = Ruleset{
		{ID: "DS", Rule: disjunctiveSyllogism{}},
		{ID: "MT", Rule: modusTollens{}},
		{ID: "DNE", Rule: doubleNegationElim{}},
		{ID: "LEM", Rule: excludedMiddle{}},
		{ID: "DeM", Rule: deMorgan{}},
		{ID: "DEM", Rule: deMorgan{}},
	}

	// SystemK is the modal base: necessity introduction/elimination,
	// the possibility definition, and modal conversion.
	SystemK = Ruleset{
		{ID: "□I", Rule: necessityIntr{}},
		{ID: "□E", Rule: necessityElim{}},
		{ID: "Def◇", Rule: possibilityDef{}},
		{ID: "MC", Rule: modalConversion{}},
	}

	// SystemT adds the reflexivity rule.
	SystemT = Ruleset{
		{ID: "RT", Rule: ruleT{}},
	}

	// SystemS4 adds transitive reiteration.
	SystemS4 = Ruleset{
		{ID: "R4", Rule: ruleFour{}},
	}

	// SystemS5 adds euclidean reiteration.
	SystemS5 = Ruleset{
		{ID: "R5", Rule: ruleFive{}},
	}
)

// namedRulesets maps stable ruleset names, in presentation order.
var namedRulesets = []struct {
	Name string
	Set  Ruleset
}{
	{"TFL_BASIC", TFLBasic},
	{"TFL_DERIVED", TFLDerived},
	{"SYSTEM_K", SystemK},
	{"SYSTEM_T", SystemT},
	{"SYSTEM_S4", SystemS4},
	{"SYSTEM_S5", SystemS5},
}

// RulesetByName resolves a ruleset by its stable name.
func RulesetByName(name string) (Ruleset, bool) {
	for _, nr := range namedRulesets {
		if nr.Name == name {
			return nr.Set, true
		}
	}
	return nil, false
}

// RulesetNames returns the stable ruleset names in presentation order.
func RulesetNames() []string {
	names := make([]string, len(namedRulesets))
	for i, nr := range namedRulesets {
		names[i] = nr.Name
	}
	return names
}
