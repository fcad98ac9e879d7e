package logic

import (
	"errors"
	"testing"

	"github.com/changilink/interlock/internal/domain"
)

func TestNewKnowledgeBaseValidation(t *testing.T) {
	valid := domain.Rule{
		ID:          "R1",
		Antecedents: []domain.Proposition{domain.Prop("A")},
		Consequent:  domain.Prop("B"),
	}

	tests := []struct {
		name  string
		rules []domain.Rule
	}{
		{"empty id", []domain.Rule{{Antecedents: valid.Antecedents, Consequent: valid.Consequent}}},
		{"no antecedents", []domain.Rule{{ID: "R1", Consequent: domain.Prop("B")}}},
		{"unnamed antecedent", []domain.Rule{{ID: "R1", Antecedents: []domain.Proposition{{}}, Consequent: domain.Prop("B")}}},
		{"no consequent", []domain.Rule{{ID: "R1", Antecedents: valid.Antecedents}}},
		{"unknown mode", []domain.Rule{{ID: "R1", Antecedents: valid.Antecedents, Consequent: valid.Consequent, Modes: []domain.Mode{"weekend"}}}},
		{"duplicate id", []domain.Rule{valid, valid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKnowledgeBase(tt.rules)
			if !errors.Is(err, ErrInvalidRule) {
				t.Errorf("NewKnowledgeBase() error = %v, want ErrInvalidRule", err)
			}
		})
	}
}

func TestKnowledgeBaseRuleLookup(t *testing.T) {
	kb, err := NewKnowledgeBase([]domain.Rule{
		{ID: "R1", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Prop("B")},
		{ID: "R2", Antecedents: []domain.Proposition{domain.Prop("B")}, Consequent: domain.Prop("C")},
	})
	if err != nil {
		t.Fatalf("NewKnowledgeBase() error = %v", err)
	}

	r, err := kb.Rule("R2")
	if err != nil {
		t.Fatalf("Rule(R2) error = %v", err)
	}
	if r.ID != "R2" {
		t.Errorf("Rule(R2).ID = %s", r.ID)
	}

	if _, err := kb.Rule("R99"); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("Rule(R99) error = %v, want ErrRuleNotFound", err)
	}
}

func TestKnowledgeBaseDeclarationOrder(t *testing.T) {
	rules := []domain.Rule{
		{ID: "Z", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Prop("B")},
		{ID: "A", Antecedents: []domain.Proposition{domain.Prop("B")}, Consequent: domain.Prop("C")},
		{ID: "M", Antecedents: []domain.Proposition{domain.Prop("C")}, Consequent: domain.Prop("D")},
	}
	kb, err := NewKnowledgeBase(rules)
	if err != nil {
		t.Fatalf("NewKnowledgeBase() error = %v", err)
	}
	got := kb.Rules()
	for i, r := range got {
		if r.ID != rules[i].ID {
			t.Errorf("Rules()[%d].ID = %s, want %s", i, r.ID, rules[i].ID)
		}
	}
}

func TestKnowledgeBaseRulesForMode(t *testing.T) {
	kb, err := NewKnowledgeBase([]domain.Rule{
		{ID: "A1", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Prop("B")},
		{ID: "T1", Antecedents: []domain.Proposition{domain.Prop("B")}, Consequent: domain.Prop("C"), Modes: []domain.Mode{domain.ModeToday}},
		{ID: "F1", Antecedents: []domain.Proposition{domain.Prop("C")}, Consequent: domain.Prop("D"), Modes: []domain.Mode{domain.ModeFuture}},
	})
	if err != nil {
		t.Fatalf("NewKnowledgeBase() error = %v", err)
	}

	ids := func(rules []domain.Rule) []string {
		out := make([]string, len(rules))
		for i, r := range rules {
			out[i] = r.ID
		}
		return out
	}

	today := ids(kb.RulesForMode(domain.ModeToday))
	if len(today) != 2 || today[0] != "A1" || today[1] != "T1" {
		t.Errorf("RulesForMode(today) = %v, want [A1 T1]", today)
	}
	future := ids(kb.RulesForMode(domain.ModeFuture))
	if len(future) != 2 || future[0] != "A1" || future[1] != "F1" {
		t.Errorf("RulesForMode(future) = %v, want [A1 F1]", future)
	}
}
