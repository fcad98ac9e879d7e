package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
)

func runRules(cmd *cobra.Command, args []string) error {
	svc := service.NewValidationService(logic.DefaultKnowledgeBase(), newLogger())

	if len(args) == 1 {
		rule, err := svc.Rule(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", rule.ID, rule.English)
		fmt.Printf("  %s\n", rule.Implication())
		if len(rule.Modes) > 0 {
			fmt.Printf("  active in: %s\n", joinModes(rule.Modes))
		}
		return nil
	}

	rules := svc.Rules()
	if ruleModeFlag != "" {
		var err error
		rules, err = svc.RulesForMode(domain.Mode(ruleModeFlag))
		if err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODES\tIMPLICATION")
	for _, r := range rules {
		modes := "all"
		if len(r.Modes) > 0 {
			modes = joinModes(r.Modes)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, modes, r.Implication())
	}
	return w.Flush()
}

func joinModes(modes []domain.Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
