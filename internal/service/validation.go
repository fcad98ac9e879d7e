package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
)

// ErrUnknownMode flags a request naming a network mode the system does
// not operate.
var ErrUnknownMode = errors.New("unknown network mode")

// ValidationService answers consistency and entailment questions about
// fact sets. Alongside the resolution verdict it raises advisory
// warnings for rules whose preconditions hold while the expected
// effect is denied outright or contradicted through a naming opposite,
// which resolution alone cannot see.
type ValidationService struct {
	kb     *logic.KnowledgeBase
	engine *logic.Engine
	logger *zap.Logger
}

func NewValidationService(kb *logic.KnowledgeBase, logger *zap.Logger) *ValidationService {
	return &ValidationService{
		kb:     kb,
		engine: logic.NewEngine(kb),
		logger: logger,
	}
}

// SetSaturationLimit caps the resolution clause arena. Zero or
// negative keeps the engine default.
func (s *ValidationService) SetSaturationLimit(n int) {
	s.engine = logic.NewBoundedEngine(s.kb, n)
}

// Rules returns the full rule catalog in declaration order.
func (s *ValidationService) Rules() []domain.Rule {
	return s.kb.Rules()
}

// RulesForMode returns the rules that take part in checks under mode.
func (s *ValidationService) RulesForMode(mode domain.Mode) ([]domain.Rule, error) {
	if !domain.ValidMode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return s.kb.RulesForMode(mode), nil
}

// Rule returns a single rule by id.
func (s *ValidationService) Rule(id string) (domain.Rule, error) {
	return s.kb.Rule(id)
}

// Check runs a consistency check and the warning scan over the facts.
func (s *ValidationService) Check(facts []domain.Fact, mode domain.Mode) (*domain.Verdict, []domain.RuleWarning, error) {
	if !domain.ValidMode(mode) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	verdict, err := s.engine.CheckConsistency(facts, mode)
	if err != nil {
		return nil, nil, err
	}
	warnings := s.warnings(facts, mode)
	s.logger.Info("consistency check",
		zap.String("mode", string(mode)),
		zap.Int("facts", len(facts)),
		zap.Bool("consistent", verdict.Consistent),
		zap.Strings("violated_rules", verdict.ViolatedRules),
		zap.Int("warnings", len(warnings)))
	return verdict, warnings, nil
}

// Entails reports whether the facts together with the mode's rules
// entail the query proposition.
func (s *ValidationService) Entails(facts []domain.Fact, mode domain.Mode, query domain.Proposition) (bool, error) {
	if !domain.ValidMode(mode) {
		return false, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	entailed, err := s.engine.Entails(facts, mode, query)
	if err != nil {
		return false, err
	}
	s.logger.Debug("entailment check",
		zap.String("mode", string(mode)),
		zap.String("query", query.String()),
		zap.Bool("entailed", entailed))
	return entailed, nil
}

// namingOpposites pairs the positive-form encodings the rule catalog
// uses: a consequent like Station_Closed_Expo clashes with an asserted
// Station_Open_Expo even though the atoms differ.
var namingOpposites = []struct{ from, to string }{
	{"Closed", "Open"},
	{"Inactive", "Active"},
}

func (s *ValidationService) warnings(facts []domain.Fact, mode domain.Mode) []domain.RuleWarning {
	val := make(map[string]bool, len(facts))
	for _, f := range facts {
		val[f.Name] = f.Value
	}
	// Closed world: a proposition absent from the facts counts false.
	holds := func(p domain.Proposition) bool {
		if p.Negated {
			return !val[p.Name]
		}
		return val[p.Name]
	}

	var out []domain.RuleWarning
	for _, r := range s.kb.RulesForMode(mode) {
		fire := true
		for _, a := range r.Antecedents {
			if !holds(a) {
				fire = false
				break
			}
		}
		if !fire {
			continue
		}
		c := r.Consequent
		if v, ok := val[c.Name]; ok {
			if v == c.Negated {
				out = append(out, domain.RuleWarning{
					RuleID:  r.ID,
					English: r.English,
					Reason:  fmt.Sprintf("expected %s, facts assert the opposite", c),
				})
			}
			continue
		}
		for _, opp := range namingOpposites {
			if !strings.Contains(c.Name, opp.from) {
				continue
			}
			counter := strings.ReplaceAll(c.Name, opp.from, opp.to)
			if val[counter] {
				out = append(out, domain.RuleWarning{
					RuleID:  r.ID,
					English: r.English,
					Reason:  fmt.Sprintf("expected %s, facts assert %s", c.Name, counter),
				})
			}
			break
		}
	}
	return out
}
