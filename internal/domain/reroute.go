package domain

// Strategy selects the optimisation method used to reroute around a
// disruption.
type Strategy string

const (
	StrategyLocalSearch Strategy = "local_search"
	StrategyAnnealing   Strategy = "annealing"
)

// AllStrategies returns the supported strategies in a stable order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyLocalSearch, StrategyAnnealing}
}

// ValidStrategy reports whether s names a supported strategy.
func ValidStrategy(s Strategy) bool {
	switch s {
	case StrategyLocalSearch, StrategyAnnealing:
		return true
	}
	return false
}

// Edge names an undirected connection between two adjacent stations.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// EdgePenalty adds extra travel minutes to an edge that stays usable
// during a disruption, such as single-tracking past worksites.
type EdgePenalty struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Minutes int    `json:"minutes"`
}

// Disruption describes a service incident: edges fully suspended and
// edges carrying a time penalty while works are under way.
type Disruption struct {
	Suspended []Edge        `json:"suspended,omitempty"`
	Penalties []EdgePenalty `json:"penalties,omitempty"`
}

// ODPair is an origin and destination demand pair to keep served while
// rerouting around a disruption.
type ODPair struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// RerouteResult is the recovered route for one demand pair, with the
// cost before and during the disruption.
type RerouteResult struct {
	Pair          ODPair   `json:"pair"`
	Path          []string `json:"path"`
	BaselineCost  int      `json:"baseline_cost"`
	DisruptedCost int      `json:"disrupted_cost"`
	Delay         int      `json:"delay"`
}

// RerouteReport summarises a rerouting run: per-pair results and the
// mean extra minutes the disruption costs across all pairs.
type RerouteReport struct {
	Strategy   Strategy        `json:"strategy"`
	Mode       Mode            `json:"mode"`
	Results    []RerouteResult `json:"results"`
	MeanDelay  float64         `json:"mean_delay"`
	Iterations int             `json:"iterations"`
}
