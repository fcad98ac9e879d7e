package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/changilink/interlock/internal/domain"
)

func mustKB(t *testing.T, rules []domain.Rule) *KnowledgeBase {
	t.Helper()
	kb, err := NewKnowledgeBase(rules)
	if err != nil {
		t.Fatalf("NewKnowledgeBase() error = %v", err)
	}
	return kb
}

func TestCheckConsistencyConsistent(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Station_Open_TanahMerah", Value: true},
		{Name: "Line_Active_TEL", Value: true},
		{Name: "Network_Mode_Today", Value: true},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if !v.Consistent {
		t.Fatalf("verdict inconsistent, violated %v", v.ViolatedRules)
	}
	if len(v.ViolatedRules) != 0 || len(v.Contradictory) != 0 || len(v.Trace) != 0 {
		t.Errorf("consistent verdict carries detail: %+v", v)
	}
}

func TestCheckConsistencySingleRuleViolation(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Station_Closed_Expo", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if v.Consistent {
		t.Fatal("verdict consistent, want contradiction via R2")
	}
	if want := []string{"R2"}; !reflect.DeepEqual(v.ViolatedRules, want) {
		t.Errorf("ViolatedRules = %v, want %v", v.ViolatedRules, want)
	}
	wantContra := []domain.Proposition{
		domain.Prop("Integration_Work_Expo"),
		domain.Not("Station_Closed_Expo"),
	}
	if !reflect.DeepEqual(v.Contradictory, wantContra) {
		t.Errorf("Contradictory = %v, want %v", v.Contradictory, wantContra)
	}
	if len(v.Trace) == 0 {
		t.Fatal("trace is empty")
	}
	if last := v.Trace[len(v.Trace)-1]; last.Clause != "⊥" {
		t.Errorf("final trace clause = %q, want ⊥", last.Clause)
	}
}

func TestCheckConsistencyMultiStepViolation(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Transfer_Unavailable_Expo", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if v.Consistent {
		t.Fatal("verdict consistent, want contradiction through R2 and R6")
	}
	if want := []string{"R2", "R6"}; !reflect.DeepEqual(v.ViolatedRules, want) {
		t.Errorf("ViolatedRules = %v, want %v", v.ViolatedRules, want)
	}
}

func TestCheckConsistencyFutureModeViolation(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Network_Mode_Future", Value: true},
		{Name: "Network_Operational", Value: true},
		{Name: "Line_Active_TEL_T5", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeFuture)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if v.Consistent {
		t.Fatal("verdict consistent, want contradiction via R4")
	}
	if want := []string{"R4"}; !reflect.DeepEqual(v.ViolatedRules, want) {
		t.Errorf("ViolatedRules = %v, want %v", v.ViolatedRules, want)
	}
	wantContra := []domain.Proposition{
		domain.Not("Line_Active_TEL_T5"),
		domain.Prop("Network_Mode_Future"),
		domain.Prop("Network_Operational"),
	}
	if !reflect.DeepEqual(v.Contradictory, wantContra) {
		t.Errorf("Contradictory = %v, want %v", v.Contradictory, wantContra)
	}
}

func TestCheckConsistencyModeScoping(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	// The same facts contradict R4 under future mode. Under today mode
	// R4 is out of scope and the set is consistent.
	facts := []domain.Fact{
		{Name: "Network_Mode_Future", Value: true},
		{Name: "Network_Operational", Value: true},
		{Name: "Line_Active_TEL_T5", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if !v.Consistent {
		t.Errorf("verdict inconsistent under today mode, violated %v", v.ViolatedRules)
	}
}

func TestCheckConsistencyConflictingFacts(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Line_Active_TEL", Value: true},
		{Name: "Station_Open_T5", Value: true},
		{Name: "Line_Active_TEL", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if !errors.Is(err, ErrConflictingFacts) {
		t.Fatalf("CheckConsistency() error = %v, want ErrConflictingFacts", err)
	}
	if v != nil {
		t.Errorf("verdict = %+v, want nil on conflicting facts", v)
	}
}

func TestCheckConsistencyTautologyDiscarded(t *testing.T) {
	kb := mustKB(t, []domain.Rule{
		{ID: "T1", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Prop("A")},
	})
	eng := NewEngine(kb)
	v, err := eng.CheckConsistency([]domain.Fact{{Name: "A", Value: false}}, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if !v.Consistent {
		t.Errorf("verdict inconsistent, tautological rule clause should be discarded")
	}
}

func TestCheckConsistencyDeterministic(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	forward := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Transfer_Unavailable_Expo", Value: false},
		{Name: "Line_Active_TEL", Value: true},
		{Name: "Station_Open_TanahMerah", Value: true},
	}
	reversed := make([]domain.Fact, len(forward))
	for i, f := range forward {
		reversed[len(forward)-1-i] = f
	}

	base, err := eng.CheckConsistency(forward, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := eng.CheckConsistency(forward, domain.ModeToday)
		if err != nil {
			t.Fatalf("CheckConsistency() error = %v", err)
		}
		if !reflect.DeepEqual(base, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, base, again)
		}
		flipped, err := eng.CheckConsistency(reversed, domain.ModeToday)
		if err != nil {
			t.Fatalf("CheckConsistency() error = %v", err)
		}
		if !reflect.DeepEqual(base, flipped) {
			t.Fatalf("fact order changed the verdict:\n%+v\n%+v", base, flipped)
		}
	}
}

func TestCheckConsistencyTraceWellFormed(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	facts := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Transfer_Unavailable_Expo", Value: false},
	}
	v, err := eng.CheckConsistency(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("CheckConsistency() error = %v", err)
	}
	if v.Consistent {
		t.Fatal("verdict consistent, want contradiction")
	}

	empties := 0
	for i, d := range v.Trace {
		if d.Step != i+1 {
			t.Errorf("trace[%d].Step = %d, want %d", i, d.Step, i+1)
		}
		if len(d.Parents) == 0 {
			if d.RuleID == "" && d.Fact == "" {
				t.Errorf("step %d has no parents and no origin", d.Step)
			}
		} else {
			if len(d.Parents) != 2 {
				t.Errorf("step %d has %d parents, want 2", d.Step, len(d.Parents))
			}
			for _, p := range d.Parents {
				if p < 1 || p >= d.Step {
					t.Errorf("step %d references parent %d", d.Step, p)
				}
			}
		}
		if d.Clause == "⊥" {
			empties++
		}
	}
	if empties != 1 {
		t.Errorf("trace holds %d empty clauses, want 1", empties)
	}
	if v.Trace[len(v.Trace)-1].Clause != "⊥" {
		t.Errorf("final step is %q, want ⊥", v.Trace[len(v.Trace)-1].Clause)
	}
}

func TestEntails(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	tests := []struct {
		name  string
		facts []domain.Fact
		mode  domain.Mode
		query domain.Proposition
		want  bool
	}{
		{
			"direct consequence",
			[]domain.Fact{{Name: "Integration_Work_Expo", Value: true}},
			domain.ModeToday,
			domain.Prop("Station_Closed_Expo"),
			true,
		},
		{
			"chained consequence",
			[]domain.Fact{{Name: "Integration_Work_Expo", Value: true}},
			domain.ModeToday,
			domain.Prop("Transfer_Unavailable_Expo"),
			true,
		},
		{
			"not entailed",
			[]domain.Fact{{Name: "Integration_Work_Expo", Value: true}},
			domain.ModeToday,
			domain.Prop("Station_Open_TanahMerah"),
			false,
		},
		{
			"future extension active",
			[]domain.Fact{
				{Name: "Network_Mode_Future", Value: true},
				{Name: "Network_Operational", Value: true},
			},
			domain.ModeFuture,
			domain.Prop("Line_Active_TEL_T5"),
			true,
		},
		{
			"rule out of mode scope",
			[]domain.Fact{
				{Name: "Network_Mode_Future", Value: true},
				{Name: "Network_Operational", Value: true},
			},
			domain.ModeToday,
			domain.Prop("Line_Active_TEL_T5"),
			false,
		},
		{
			"negated query not provable",
			[]domain.Fact{{Name: "Integration_Work_Expo", Value: true}},
			domain.ModeToday,
			domain.Not("Station_Closed_Expo"),
			false,
		},
		{
			"fact entails itself",
			[]domain.Fact{{Name: "Time_Peak", Value: true}},
			domain.ModeToday,
			domain.Prop("Time_Peak"),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Entails(tt.facts, tt.mode, tt.query)
			if err != nil {
				t.Fatalf("Entails() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Entails(%v) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEntailsEmptyQuery(t *testing.T) {
	eng := NewEngine(DefaultKnowledgeBase())
	if _, err := eng.Entails(nil, domain.ModeToday, domain.Proposition{}); err == nil {
		t.Error("Entails() with empty query succeeded, want error")
	}
}

func TestBoundedEngineSaturationLimit(t *testing.T) {
	eng := NewBoundedEngine(DefaultKnowledgeBase(), 8)
	facts := []domain.Fact{
		{Name: "Line_Active_TEL", Value: true},
		{Name: "Station_Open_T5", Value: true},
	}
	_, err := eng.CheckConsistency(facts, domain.ModeToday)
	if !errors.Is(err, ErrSaturationLimit) {
		t.Fatalf("CheckConsistency() error = %v, want ErrSaturationLimit", err)
	}
}

// TestEngineMatchesTruthTable cross-checks resolution against brute
// force: for a small rule set, every combination of asserted facts must
// agree with satisfiability over all assignments.
func TestEngineMatchesTruthTable(t *testing.T) {
	rules := []domain.Rule{
		{ID: "T1", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Prop("B")},
		{ID: "T2", Antecedents: []domain.Proposition{domain.Prop("B"), domain.Prop("C")}, Consequent: domain.Prop("D")},
		{ID: "T3", Antecedents: []domain.Proposition{domain.Prop("A")}, Consequent: domain.Not("C")},
		{ID: "T4", Antecedents: []domain.Proposition{domain.Not("D")}, Consequent: domain.Prop("E")},
	}
	atoms := []string{"A", "B", "C", "D", "E"}
	eng := NewEngine(mustKB(t, rules))

	cases := 1
	for range atoms {
		cases *= 3
	}
	for mask := 0; mask < cases; mask++ {
		var facts []domain.Fact
		m := mask
		for _, a := range atoms {
			switch m % 3 {
			case 1:
				facts = append(facts, domain.Fact{Name: a, Value: true})
			case 2:
				facts = append(facts, domain.Fact{Name: a, Value: false})
			}
			m /= 3
		}
		want := satisfiable(rules, facts, atoms)
		v, err := eng.CheckConsistency(facts, domain.ModeToday)
		if err != nil {
			t.Fatalf("CheckConsistency(%v) error = %v", facts, err)
		}
		if v.Consistent != want {
			t.Errorf("facts %v: consistent = %v, want %v", facts, v.Consistent, want)
		}
	}
}

func satisfiable(rules []domain.Rule, facts []domain.Fact, atoms []string) bool {
	truth := func(val map[string]bool, p domain.Proposition) bool {
		if p.Negated {
			return !val[p.Name]
		}
		return val[p.Name]
	}
	for bits := 0; bits < 1<<len(atoms); bits++ {
		val := make(map[string]bool, len(atoms))
		for i, a := range atoms {
			val[a] = bits&(1<<i) != 0
		}
		ok := true
		for _, f := range facts {
			if val[f.Name] != f.Value {
				ok = false
				break
			}
		}
		for _, r := range rules {
			if !ok {
				break
			}
			fire := true
			for _, a := range r.Antecedents {
				if !truth(val, a) {
					fire = false
					break
				}
			}
			if fire && !truth(val, r.Consequent) {
				ok = false
			}
		}
		if ok {
			return true
		}
	}
	return false
}
