package service

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
)

func newValidator(t *testing.T) *ValidationService {
	t.Helper()
	return NewValidationService(logic.DefaultKnowledgeBase(), zap.NewNop())
}

func TestValidationCheckConsistent(t *testing.T) {
	svc := newValidator(t)

	facts := []domain.Fact{
		{Name: "Network_Mode_Future", Value: true},
		{Name: "Network_Operational", Value: true},
		{Name: "Line_Active_TEL", Value: true},
	}
	verdict, warnings, err := svc.Check(facts, domain.ModeFuture)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !verdict.Consistent {
		t.Errorf("Consistent = false, want true (violated %v)", verdict.ViolatedRules)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestValidationCheckViolation(t *testing.T) {
	svc := newValidator(t)

	facts := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Station_Closed_Expo", Value: false},
	}
	verdict, warnings, err := svc.Check(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if verdict.Consistent {
		t.Fatal("Consistent = true, want false")
	}
	if got, want := verdict.ViolatedRules, []string{"R2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ViolatedRules = %v, want %v", got, want)
	}

	// The same clash surfaces as a warning: R2's preconditions hold
	// while its consequent is asserted false.
	if len(warnings) != 1 || warnings[0].RuleID != "R2" {
		t.Fatalf("warnings = %v, want one R2 warning", warnings)
	}
}

func TestValidationWarningNamingOpposite(t *testing.T) {
	svc := newValidator(t)

	// Resolution sees no clash: Line_Inactive_EWL_Airport and
	// Line_Active_EWL_Airport are distinct atoms. The warning scan
	// bridges the naming convention.
	facts := []domain.Fact{
		{Name: "Network_Mode_Future", Value: true},
		{Name: "Line_Active_EWL_Airport", Value: true},
		{Name: "Destination_Changi_Airport", Value: true},
	}
	verdict, warnings, err := svc.Check(facts, domain.ModeFuture)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !verdict.Consistent {
		t.Errorf("Consistent = false, want true")
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if warnings[0].RuleID != "R3" {
		t.Errorf("warning rule = %s, want R3", warnings[0].RuleID)
	}
}

func TestValidationWarningClosedOpposite(t *testing.T) {
	svc := newValidator(t)

	facts := []domain.Fact{
		{Name: "Integration_Work_Expo", Value: true},
		{Name: "Station_Open_Expo", Value: true},
	}
	verdict, warnings, err := svc.Check(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !verdict.Consistent {
		t.Errorf("Consistent = false, want true")
	}
	if len(warnings) != 1 || warnings[0].RuleID != "R2" {
		t.Fatalf("warnings = %v, want one R2 warning", warnings)
	}
}

func TestValidationWarningScopedByMode(t *testing.T) {
	svc := newValidator(t)

	// R3 is future-only, so the same facts raise nothing today.
	facts := []domain.Fact{
		{Name: "Network_Mode_Future", Value: true},
		{Name: "Line_Active_EWL_Airport", Value: true},
	}
	_, warnings, err := svc.Check(facts, domain.ModeToday)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none in today mode", warnings)
	}
}

func TestValidationCheckUnknownMode(t *testing.T) {
	svc := newValidator(t)

	_, _, err := svc.Check([]domain.Fact{{Name: "A", Value: true}}, "weekend")
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestValidationCheckConflictingFacts(t *testing.T) {
	svc := newValidator(t)

	facts := []domain.Fact{
		{Name: "Line_Active_TEL", Value: true},
		{Name: "Line_Active_TEL", Value: false},
	}
	_, _, err := svc.Check(facts, domain.ModeToday)
	if !errors.Is(err, logic.ErrConflictingFacts) {
		t.Fatalf("err = %v, want ErrConflictingFacts", err)
	}
}

func TestValidationEntails(t *testing.T) {
	svc := newValidator(t)

	facts := []domain.Fact{{Name: "Integration_Work_Expo", Value: true}}

	entailed, err := svc.Entails(facts, domain.ModeToday, domain.Prop("Transfer_Unavailable_Expo"))
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if !entailed {
		t.Error("R2 and R6 should chain to Transfer_Unavailable_Expo")
	}

	entailed, err = svc.Entails(facts, domain.ModeToday, domain.Prop("Line_Active_TEL"))
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if entailed {
		t.Error("unrelated proposition should not be entailed")
	}
}

func TestValidationEntailsUnknownMode(t *testing.T) {
	svc := newValidator(t)

	_, err := svc.Entails(nil, "m", domain.Prop("A"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestValidationRulesForMode(t *testing.T) {
	svc := newValidator(t)

	today, err := svc.RulesForMode(domain.ModeToday)
	if err != nil {
		t.Fatalf("RulesForMode(today): %v", err)
	}
	future, err := svc.RulesForMode(domain.ModeFuture)
	if err != nil {
		t.Fatalf("RulesForMode(future): %v", err)
	}
	if len(today) >= len(future) {
		t.Errorf("today scope %d rules, future %d; future carries the transition rules", len(today), len(future))
	}
	if _, err := svc.RulesForMode("planned"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestValidationRuleLookup(t *testing.T) {
	svc := newValidator(t)

	r, err := svc.Rule("R2")
	if err != nil {
		t.Fatalf("Rule(R2): %v", err)
	}
	if r.Consequent.Name != "Station_Closed_Expo" {
		t.Errorf("R2 consequent = %s, want Station_Closed_Expo", r.Consequent.Name)
	}
	if _, err := svc.Rule("R99"); !errors.Is(err, logic.ErrRuleNotFound) {
		t.Errorf("err = %v, want ErrRuleNotFound", err)
	}
}
