package domain

// Algorithm selects the search strategy used to plan a route.
type Algorithm string

const (
	AlgorithmBFS    Algorithm = "bfs"
	AlgorithmDFS    Algorithm = "dfs"
	AlgorithmGreedy Algorithm = "greedy"
	AlgorithmAStar  Algorithm = "astar"
)

// AllAlgorithms returns the supported algorithms in a stable order.
func AllAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmGreedy, AlgorithmAStar}
}

// ValidAlgorithm reports whether a names a supported search algorithm.
func ValidAlgorithm(a Algorithm) bool {
	switch a {
	case AlgorithmBFS, AlgorithmDFS, AlgorithmGreedy, AlgorithmAStar:
		return true
	}
	return false
}

// RoutePlan is one planned route through the network. Cost counts
// travel minutes along the path plus a fixed penalty per line change;
// NodesExpanded counts search effort for comparing algorithms.
type RoutePlan struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Mode          Mode      `json:"mode"`
	Algorithm     Algorithm `json:"algorithm"`
	Path          []string  `json:"path"`
	Lines         []string  `json:"lines"`
	Cost          int       `json:"cost"`
	Transfers     int       `json:"transfers"`
	NodesExpanded int       `json:"nodes_expanded"`
	ElapsedMicros int64     `json:"elapsed_us"`
}

// RouteComparison holds plans for the same origin and destination
// produced by several algorithms, across one or both network modes.
type RouteComparison struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Plans       []RoutePlan `json:"plans"`
}
