package domain

import "strings"

// Mode selects which network layout and rule subset apply: the current
// network or the one after the Changi extensions open.
type Mode string

const (
	ModeToday  Mode = "today"
	ModeFuture Mode = "future"
)

// AllModes returns the supported modes in a stable order.
func AllModes() []Mode {
	return []Mode{ModeToday, ModeFuture}
}

// ValidMode reports whether m names a supported network mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeToday, ModeFuture:
		return true
	}
	return false
}

// Rule is a definite implication over propositions: when every
// antecedent holds, the consequent holds. Rules scoped to modes only
// take part in checks run under one of those modes; an empty mode list
// means the rule always applies.
type Rule struct {
	ID          string        `json:"id"`
	English     string        `json:"english"`
	Antecedents []Proposition `json:"antecedents"`
	Consequent  Proposition   `json:"consequent"`
	Modes       []Mode        `json:"modes,omitempty"`
}

// AppliesTo reports whether the rule takes part in checks under mode.
func (r Rule) AppliesTo(mode Mode) bool {
	if len(r.Modes) == 0 {
		return true
	}
	for _, m := range r.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Clause returns the conjunctive normal form of the implication: the
// negation of every antecedent disjoined with the consequent.
func (r Rule) Clause() Clause {
	props := make([]Proposition, 0, len(r.Antecedents)+1)
	for _, a := range r.Antecedents {
		props = append(props, a.Negate())
	}
	props = append(props, r.Consequent)
	return NewClause(props...)
}

// Implication renders the rule in A ∧ B → C form for display.
func (r Rule) Implication() string {
	parts := make([]string, len(r.Antecedents))
	for i, a := range r.Antecedents {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ∧ ") + " → " + r.Consequent.String()
}
