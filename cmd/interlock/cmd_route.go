package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

func runRoutePlan(cmd *cobra.Command, args []string) error {
	svc := service.NewRouteService(newLogger())
	plan, err := svc.Plan(args[0], args[1], domain.Mode(modeFlag), domain.Algorithm(algFlag))
	if err != nil {
		return err
	}

	fmt.Printf("Route (%s network, %s): %s\n", plan.Mode, plan.Algorithm, strings.Join(plan.Path, " - "))
	fmt.Printf("Lines: %s\n", strings.Join(plan.Lines, ", "))
	fmt.Printf("Cost: %d min over %d stations with %d transfer(s)\n", plan.Cost, len(plan.Path), plan.Transfers)
	fmt.Printf("Search: %d nodes expanded in %dus\n", plan.NodesExpanded, plan.ElapsedMicros)
	return nil
}

func runRouteCompare(cmd *cobra.Command, args []string) error {
	svc := service.NewRouteService(newLogger())
	cmp, err := svc.Compare(args[0], args[1])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tALGORITHM\tCOST\tSTATIONS\tTRANSFERS\tEXPANDED\tTIME")
	for _, p := range cmp.Plans {
		fmt.Fprintf(w, "%s\t%s\t%d min\t%d\t%d\t%d\t%dus\n",
			p.Mode, p.Algorithm, p.Cost, len(p.Path), p.Transfers, p.NodesExpanded, p.ElapsedMicros)
	}
	return w.Flush()
}
