package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
)

func newScenarioService() (*service.ScenarioService, error) {
	logger := newLogger()
	validator := service.NewValidationService(logic.DefaultKnowledgeBase(), logger)
	return service.NewScenarioService(validator, logger)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	svc, err := newScenarioService()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tEXPECTS\tNAME")
	for _, sc := range svc.Scenarios() {
		expects := "consistent"
		if !sc.ExpectConsistent {
			expects = "inconsistent"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sc.ID, sc.Mode, expects, sc.Name)
	}
	return w.Flush()
}

func runScenarioRun(cmd *cobra.Command, args []string) error {
	svc, err := newScenarioService()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		run, err := svc.Run(args[0])
		if err != nil {
			return err
		}
		printScenarioRun(*run)
		return nil
	}

	runs, err := svc.RunAll(cmd.Context())
	if err != nil {
		return err
	}
	matched := 0
	for _, run := range runs {
		printScenarioRun(run)
		if run.Matches {
			matched++
		}
	}
	fmt.Printf("\n%d/%d scenarios matched their expectation\n", matched, len(runs))
	return nil
}

func printScenarioRun(run service.ScenarioRun) {
	verdict := "consistent"
	if !run.Verdict.Consistent {
		verdict = "INCONSISTENT (" + strings.Join(run.Verdict.ViolatedRules, ", ") + ")"
	}
	match := "match"
	if !run.Matches {
		match = "MISMATCH"
	}
	fmt.Printf("%-10s %-12s %-9s %s\n", run.Scenario.ID, verdict, match, run.Scenario.Name)
	for _, w := range run.Warnings {
		fmt.Printf("           warning %s: %s\n", w.RuleID, w.Reason)
	}
}
