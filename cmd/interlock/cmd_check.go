package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
)

func runCheck(cmd *cobra.Command, args []string) error {
	facts, err := parseFacts(factFlags)
	if err != nil {
		return err
	}
	if len(facts) == 0 {
		return fmt.Errorf("at least one --fact is required")
	}

	svc := service.NewValidationService(logic.DefaultKnowledgeBase(), newLogger())
	verdict, warnings, err := svc.Check(facts, domain.Mode(modeFlag))
	if err != nil {
		return err
	}

	if verdict.Consistent {
		fmt.Println("CONSISTENT")
	} else {
		fmt.Printf("INCONSISTENT: violates %s\n", strings.Join(verdict.ViolatedRules, ", "))
		for _, p := range verdict.Contradictory {
			fmt.Printf("  contradiction on %s\n", p.Name)
		}
	}
	for _, w := range warnings {
		fmt.Printf("warning %s: %s\n", w.RuleID, w.Reason)
	}
	return nil
}

func runProve(cmd *cobra.Command, args []string) error {
	facts, err := parseFacts(factFlags)
	if err != nil {
		return err
	}

	query := domain.Proposition{Name: args[0]}
	if strings.HasPrefix(query.Name, "!") {
		query.Name = strings.TrimPrefix(query.Name, "!")
		query.Negated = true
	}
	if query.Name == "" {
		return fmt.Errorf("empty proposition")
	}

	svc := service.NewValidationService(logic.DefaultKnowledgeBase(), newLogger())
	entailed, err := svc.Entails(facts, domain.Mode(modeFlag), query)
	if err != nil {
		return err
	}

	if entailed {
		fmt.Printf("ENTAILED: %s follows from the facts under the %s rules\n", query, modeFlag)
	} else {
		fmt.Printf("NOT ENTAILED: %s does not follow from the facts under the %s rules\n", query, modeFlag)
	}
	return nil
}

// parseFacts turns repeated --fact Name=true|false flags into facts.
// A bare name asserts true.
func parseFacts(raw []string) ([]domain.Fact, error) {
	facts := make([]domain.Fact, 0, len(raw))
	for _, s := range raw {
		name, value, found := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid fact %q", s)
		}
		f := domain.Fact{Name: name, Value: true}
		if found {
			v, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid fact %q: value must be true or false", s)
			}
			f.Value = v
		}
		facts = append(facts, f)
	}
	return facts, nil
}
