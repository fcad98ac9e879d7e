package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/buildconfig"
	"github.com/changilink/interlock/internal/domain"
)

// --- Global Command Variables ---
var (
	verboseFlag  bool
	modeFlag     string // network mode for check/prove/plan/reroute
	ruleModeFlag string // optional mode filter for the rules listing
	factFlags    []string
	algFlag      string
	strategyFlag string
	seedFlag     int64
	suspendFlags []string
	penaltyFlags []string
	pairFlags    []string
	weatherFlag  string
	timeFlag     string
	dayFlag      string
	serviceFlag  string
	cmodeFlag    string // optional network mode evidence for crowding

	rootCmd = &cobra.Command{
		Use:   "interlock",
		Short: "Rule checks, journey planning and crowding forecasts for the airport rail corridor",
		Long: `Interlock validates MRT operational facts against the published rule
catalog, plans journeys over the present and future network, reroutes
demand around disruptions and forecasts crowding risk.`,
	}

	rulesCmd = &cobra.Command{
		Use:   "rules [id]",
		Short: "Print the rule catalog, or one rule by id",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRules, // Defined in cmd_rules.go
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Check a set of operational facts for consistency",
		RunE:  runCheck, // Defined in cmd_check.go
	}

	proveCmd = &cobra.Command{
		Use:   "prove [proposition]",
		Short: "Test whether the facts and rules entail a proposition",
		Long: `Prove runs a resolution refutation for the queried proposition given
the --fact assertions and the mode's rules. Prefix the proposition
with ! to query its negation.`,
		Args: cobra.ExactArgs(1),
		RunE: runProve, // Defined in cmd_check.go
	}

	scenariosCmd = &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in operational scenarios",
		RunE:  runScenarios, // Defined in cmd_scenarios.go
	}
	scenariosRunCmd = &cobra.Command{
		Use:   "run [id]",
		Short: "Run every scenario, or a single one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenarioRun, // Defined in cmd_scenarios.go
	}

	routeCmd = &cobra.Command{
		Use:   "route",
		Short: "Plan journeys through the rail network",
	}
	routePlanCmd = &cobra.Command{
		Use:   "plan [origin] [destination]",
		Short: "Plan a route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE:  runRoutePlan, // Defined in cmd_route.go
	}
	routeCompareCmd = &cobra.Command{
		Use:   "compare [origin] [destination]",
		Short: "Compare every algorithm across both network modes",
		Args:  cobra.ExactArgs(2),
		RunE:  runRouteCompare, // Defined in cmd_route.go
	}

	rerouteCmd = &cobra.Command{
		Use:   "reroute",
		Short: "Reroute demand pairs around a disruption",
		Long: `Reroute recovers routes for origin-destination demand pairs while
edges are suspended or slowed. Without --suspend or --penalty it
exercises the standard Tanah Merah to Expo closure drill.`,
		RunE: runReroute, // Defined in cmd_reroute.go
	}

	crowdingCmd = &cobra.Command{
		Use:   "crowding",
		Short: "Forecast crowding risk from observed evidence",
		RunE:  runCrowding, // Defined in cmd_crowding.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("interlock %s (%s)\n", buildconfig.Version(), buildconfig.Commit())
		},
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Log service internals to stderr")

	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVar(&ruleModeFlag, "mode", "",
		"Restrict the listing to rules active in one mode (today, future)")

	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeToday),
		"Network mode to check under (today, future)")
	checkCmd.Flags().StringArrayVar(&factFlags, "fact", nil,
		"Operational fact as Name=true|false, repeatable")

	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeToday),
		"Network mode to prove under (today, future)")
	proveCmd.Flags().StringArrayVar(&factFlags, "fact", nil,
		"Operational fact as Name=true|false, repeatable")

	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)

	rootCmd.AddCommand(routeCmd)
	routeCmd.AddCommand(routePlanCmd)
	routePlanCmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeToday),
		"Network mode to plan on (today, future)")
	routePlanCmd.Flags().StringVar(&algFlag, "algorithm", string(domain.AlgorithmAStar),
		"Search algorithm (bfs, dfs, greedy, astar)")
	routeCmd.AddCommand(routeCompareCmd)

	rootCmd.AddCommand(rerouteCmd)
	rerouteCmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeToday),
		"Network mode to reroute on (today, future)")
	rerouteCmd.Flags().StringVar(&strategyFlag, "strategy", string(domain.StrategyLocalSearch),
		"Optimisation strategy (local_search, annealing)")
	rerouteCmd.Flags().Int64Var(&seedFlag, "seed", 0,
		"Random seed for reproducible runs (0 uses the clock)")
	rerouteCmd.Flags().StringArrayVar(&suspendFlags, "suspend", nil,
		"Suspended edge as From:To, repeatable")
	rerouteCmd.Flags().StringArrayVar(&penaltyFlags, "penalty", nil,
		"Slowed edge as From:To:Minutes, repeatable")
	rerouteCmd.Flags().StringArrayVar(&pairFlags, "pair", nil,
		"Demand pair as Origin:Destination, repeatable (default demand sample)")

	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(crowdingCmd)
	crowdingCmd.Flags().StringVar(&weatherFlag, "weather", "",
		"Observed weather (clear, rainy, thunderstorms)")
	crowdingCmd.Flags().StringVar(&timeFlag, "time", "",
		"Time band (morning, afternoon, evening)")
	crowdingCmd.Flags().StringVar(&dayFlag, "day", "",
		"Day type (weekday, weekend)")
	crowdingCmd.Flags().StringVar(&serviceFlag, "service", "",
		"Observed service status (normal, reduced, disrupted)")
	crowdingCmd.Flags().StringVar(&cmodeFlag, "mode", "",
		"Network mode evidence (today, future)")
}

// newLogger returns a logger for the wired services. Quiet by default
// so command output stays parseable.
func newLogger() *zap.Logger {
	if !verboseFlag {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
