package domain

// Verdict is the outcome of a consistency check. A consistent fact set
// carries no further detail; an inconsistent one names the rules and
// facts that produced the contradiction, with the derivation that
// reached the empty clause.
type Verdict struct {
	Consistent    bool          `json:"consistent"`
	ViolatedRules []string      `json:"violated_rules,omitempty"`
	Contradictory []Proposition `json:"contradictory_propositions,omitempty"`
	Trace         []Derivation  `json:"trace,omitempty"`
}

// Derivation is one step of a resolution trace. Initial steps carry the
// rule or fact they came from; derived steps point at the two earlier
// steps they resolved.
type Derivation struct {
	Step    int    `json:"step"`
	Clause  string `json:"clause"`
	Parents []int  `json:"parents,omitempty"`
	RuleID  string `json:"rule_id,omitempty"`
	Fact    string `json:"fact,omitempty"`
}

// RuleWarning flags a rule whose preconditions held while its expected
// effect was absent or contradicted by name. Warnings are advisory and
// independent of the resolution verdict.
type RuleWarning struct {
	RuleID  string `json:"rule_id"`
	English string `json:"english"`
	Reason  string `json:"reason"`
}
