package logic

import (
	"errors"
	"fmt"

	"github.com/changilink/interlock/internal/domain"
)

var (
	// ErrInvalidRule flags a malformed rule at knowledge base
	// construction: missing id, empty antecedents, or unknown mode.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrRuleNotFound flags a lookup for a rule id that is not in the
	// knowledge base.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrConflictingFacts flags a fact set asserting both values for
	// the same proposition.
	ErrConflictingFacts = errors.New("conflicting facts")

	// ErrSaturationLimit flags a resolution run that exceeded the
	// clause arena cap before reaching saturation or a contradiction.
	ErrSaturationLimit = errors.New("saturation limit exceeded")
)

// KnowledgeBase holds validated operational rules in declaration order.
type KnowledgeBase struct {
	rules []domain.Rule
	byID  map[string]int
}

// NewKnowledgeBase validates every rule and returns the assembled base.
// Construction is fail-fast: the first malformed rule aborts with
// ErrInvalidRule.
func NewKnowledgeBase(rules []domain.Rule) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		rules: make([]domain.Rule, 0, len(rules)),
		byID:  make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, err
		}
		if _, dup := kb.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidRule, r.ID)
		}
		kb.byID[r.ID] = len(kb.rules)
		kb.rules = append(kb.rules, r)
	}
	return kb, nil
}

func validateRule(r domain.Rule) error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRule)
	}
	if len(r.Antecedents) == 0 {
		return fmt.Errorf("%w: %s has no antecedents", ErrInvalidRule, r.ID)
	}
	for _, a := range r.Antecedents {
		if a.Name == "" {
			return fmt.Errorf("%w: %s has an unnamed antecedent", ErrInvalidRule, r.ID)
		}
	}
	if r.Consequent.Name == "" {
		return fmt.Errorf("%w: %s has no consequent", ErrInvalidRule, r.ID)
	}
	for _, m := range r.Modes {
		if !domain.ValidMode(m) {
			return fmt.Errorf("%w: %s has unknown mode %q", ErrInvalidRule, r.ID, m)
		}
	}
	return nil
}

// Rules returns every rule in declaration order.
func (kb *KnowledgeBase) Rules() []domain.Rule {
	out := make([]domain.Rule, len(kb.rules))
	copy(out, kb.rules)
	return out
}

// Rule returns the rule with the given id, or ErrRuleNotFound.
func (kb *KnowledgeBase) Rule(id string) (domain.Rule, error) {
	i, ok := kb.byID[id]
	if !ok {
		return domain.Rule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	return kb.rules[i], nil
}

// RulesForMode returns the rules that take part in checks under mode,
// in declaration order.
func (kb *KnowledgeBase) RulesForMode(mode domain.Mode) []domain.Rule {
	out := make([]domain.Rule, 0, len(kb.rules))
	for _, r := range kb.rules {
		if r.AppliesTo(mode) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of rules in the base.
func (kb *KnowledgeBase) Count() int { return len(kb.rules) }
