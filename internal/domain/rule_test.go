package domain

import (
	"reflect"
	"testing"
)

func TestValidMode(t *testing.T) {
	for _, m := range AllModes() {
		if !ValidMode(m) {
			t.Errorf("ValidMode(%q) = false, want true", m)
		}
	}
	for _, m := range []Mode{"", "weekend", "TODAY"} {
		if ValidMode(m) {
			t.Errorf("ValidMode(%q) = true, want false", m)
		}
	}
}

func TestRuleClause(t *testing.T) {
	r := Rule{
		ID:          "R4",
		Antecedents: []Proposition{Prop("Network_Mode_Future"), Prop("Network_Operational")},
		Consequent:  Prop("Line_Active_TEL_T5"),
	}
	got := r.Clause().Props()
	want := []Proposition{
		Prop("Line_Active_TEL_T5"),
		Not("Network_Mode_Future"),
		Not("Network_Operational"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clause() = %v, want %v", got, want)
	}
}

func TestRuleClauseNegatedAntecedent(t *testing.T) {
	r := Rule{
		ID:          "X1",
		Antecedents: []Proposition{Not("Station_Open_Expo")},
		Consequent:  Prop("Transfer_Unavailable_Expo"),
	}
	c := r.Clause()
	if !c.Has(Prop("Station_Open_Expo")) || !c.Has(Prop("Transfer_Unavailable_Expo")) {
		t.Errorf("Clause() = %v, want double-negated antecedent restored", c)
	}
}

func TestRuleAppliesTo(t *testing.T) {
	tests := []struct {
		name       string
		modes      []Mode
		today      bool
		future     bool
	}{
		{"agnostic", nil, true, true},
		{"today only", []Mode{ModeToday}, true, false},
		{"future only", []Mode{ModeFuture}, false, true},
		{"both listed", []Mode{ModeToday, ModeFuture}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rule{ID: "R", Modes: tt.modes}
			if got := r.AppliesTo(ModeToday); got != tt.today {
				t.Errorf("AppliesTo(today) = %v, want %v", got, tt.today)
			}
			if got := r.AppliesTo(ModeFuture); got != tt.future {
				t.Errorf("AppliesTo(future) = %v, want %v", got, tt.future)
			}
		})
	}
}

func TestRuleImplication(t *testing.T) {
	r := Rule{
		ID:          "R1",
		Antecedents: []Proposition{Prop("Station_Open_TanahMerah"), Prop("Line_Active_TEL")},
		Consequent:  Prop("Transfer_Available_TEL_EWL"),
	}
	want := "Station_Open_TanahMerah ∧ Line_Active_TEL → Transfer_Available_TEL_EWL"
	if got := r.Implication(); got != want {
		t.Errorf("Implication() = %q, want %q", got, want)
	}
}
