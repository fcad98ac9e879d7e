package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

func runReroute(cmd *cobra.Command, args []string) error {
	d := service.DefaultDisruption()
	if len(suspendFlags) > 0 || len(penaltyFlags) > 0 {
		d = domain.Disruption{}
		for _, s := range suspendFlags {
			edge, err := parseEdge(s)
			if err != nil {
				return err
			}
			d.Suspended = append(d.Suspended, edge)
		}
		for _, s := range penaltyFlags {
			p, err := parsePenalty(s)
			if err != nil {
				return err
			}
			d.Penalties = append(d.Penalties, p)
		}
	}

	var pairs []domain.ODPair
	for _, s := range pairFlags {
		pair, err := parsePair(s)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
	}

	svc := service.NewReroutingService(newLogger())
	report, err := svc.Optimize(domain.Mode(modeFlag), domain.Strategy(strategyFlag), d, pairs, seedFlag)
	if err != nil {
		return err
	}

	fmt.Printf("Rerouted %d pair(s) on the %s network with %s (%d iterations)\n",
		len(report.Results), report.Mode, report.Strategy, report.Iterations)
	for _, res := range report.Results {
		fmt.Printf("  %s to %s: %d min (baseline %d, +%d)\n",
			res.Pair.Origin, res.Pair.Destination, res.DisruptedCost, res.BaselineCost, res.Delay)
		fmt.Printf("    %s\n", strings.Join(res.Path, " - "))
	}
	fmt.Printf("Mean delay: %.1f min\n", report.MeanDelay)
	return nil
}

func parseEdge(s string) (domain.Edge, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.Edge{}, fmt.Errorf("invalid edge %q: want From:To", s)
	}
	return domain.Edge{From: parts[0], To: parts[1]}, nil
}

func parsePenalty(s string) (domain.EdgePenalty, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return domain.EdgePenalty{}, fmt.Errorf("invalid penalty %q: want From:To:Minutes", s)
	}
	minutes, err := strconv.Atoi(parts[2])
	if err != nil || minutes < 0 {
		return domain.EdgePenalty{}, fmt.Errorf("invalid penalty %q: minutes must be a non-negative integer", s)
	}
	return domain.EdgePenalty{From: parts[0], To: parts[1], Minutes: minutes}, nil
}

func parsePair(s string) (domain.ODPair, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.ODPair{}, fmt.Errorf("invalid pair %q: want Origin:Destination", s)
	}
	return domain.ODPair{Origin: parts[0], Destination: parts[1]}, nil
}
