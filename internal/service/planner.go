package service

import (
	"container/heap"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/network"
)

var (
	// ErrStationNotFound flags an origin or destination the requested
	// network does not contain.
	ErrStationNotFound = errors.New("station not found")

	// ErrRouteNotFound means the search exhausted the frontier without
	// reaching the destination.
	ErrRouteNotFound = errors.New("route not found")

	// ErrUnknownAlgorithm flags a search algorithm the planner does not
	// implement.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// RouteService plans journeys over the rail networks with uninformed
// and informed search.
type RouteService struct {
	logger *zap.Logger
}

func NewRouteService(logger *zap.Logger) *RouteService {
	return &RouteService{logger: logger}
}

// Plan finds a route from origin to destination on the given network
// using the given algorithm.
func (s *RouteService) Plan(origin, destination string, mode domain.Mode, alg domain.Algorithm) (*domain.RoutePlan, error) {
	if !domain.ValidMode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if !domain.ValidAlgorithm(alg) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	g, _ := network.ForMode(mode)
	if !g.Has(origin) {
		return nil, fmt.Errorf("%w: %s (%s network)", ErrStationNotFound, origin, mode)
	}
	if !g.Has(destination) {
		return nil, fmt.Errorf("%w: %s (%s network)", ErrStationNotFound, destination, mode)
	}

	start := time.Now()
	path, expanded := runSearch(g, nil, origin, destination, alg, nil)
	elapsed := time.Since(start).Microseconds()
	if path == nil {
		return nil, fmt.Errorf("%w: %s to %s on the %s network", ErrRouteNotFound, origin, destination, mode)
	}
	cost, err := g.PathCost(path, nil)
	if err != nil {
		return nil, err
	}

	plan := &domain.RoutePlan{
		Origin:        origin,
		Destination:   destination,
		Mode:          mode,
		Algorithm:     alg,
		Path:          path,
		Lines:         linesRidden(g, path),
		Cost:          cost,
		Transfers:     g.Transfers(path),
		NodesExpanded: expanded,
		ElapsedMicros: elapsed,
	}
	s.logger.Debug("route planned",
		zap.String("mode", string(mode)),
		zap.String("algorithm", string(alg)),
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.Int("cost", cost),
		zap.Int("nodes_expanded", expanded))
	return plan, nil
}

// Compare plans the same journey with every algorithm on every network
// that contains both stations. A network missing either station is
// skipped rather than failing the comparison.
func (s *RouteService) Compare(origin, destination string) (*domain.RouteComparison, error) {
	if !stationKnown(origin) {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, origin)
	}
	if !stationKnown(destination) {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, destination)
	}

	cmp := &domain.RouteComparison{Origin: origin, Destination: destination}
	var firstErr error
	for _, mode := range domain.AllModes() {
		g, _ := network.ForMode(mode)
		if !g.Has(origin) || !g.Has(destination) {
			continue
		}
		for _, alg := range domain.AllAlgorithms() {
			plan, err := s.Plan(origin, destination, mode, alg)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			cmp.Plans = append(cmp.Plans, *plan)
		}
	}
	if len(cmp.Plans) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("%w: %s to %s", ErrRouteNotFound, origin, destination)
	}
	return cmp, nil
}

func stationKnown(name string) bool {
	for _, mode := range domain.AllModes() {
		if g, ok := network.ForMode(mode); ok && g.Has(name) {
			return true
		}
	}
	return false
}

// linesRidden collapses the per-station line labels into the sequence
// of distinct lines the path rides, in order.
func linesRidden(g *network.Graph, path []string) []string {
	var out []string
	for _, st := range path {
		line := g.Line(st)
		if len(out) == 0 || out[len(out)-1] != line {
			out = append(out, line)
		}
	}
	return out
}

// runSearch dispatches to a search implementation. The overlay, when
// non-nil, suspends edges and inflates edge weights; rng, when non-nil,
// randomises tie-breaking between equally ranked frontier entries.
// The returned count is the number of nodes taken off the frontier.
func runSearch(g *network.Graph, o *network.Overlay, from, to string, alg domain.Algorithm, rng *rand.Rand) ([]string, int) {
	switch alg {
	case domain.AlgorithmBFS:
		return breadthFirst(g, o, from, to)
	case domain.AlgorithmDFS:
		return depthFirst(g, o, from, to)
	case domain.AlgorithmGreedy:
		return greedyBest(g, o, from, to, rng)
	case domain.AlgorithmAStar:
		return aStar(g, o, from, to, rng)
	}
	return nil, 0
}

// hops returns from's outgoing edges with suspended ones removed.
func hops(g *network.Graph, o *network.Overlay, from string) []network.Hop {
	all := g.Neighbors(from)
	if o == nil {
		return all
	}
	kept := make([]network.Hop, 0, len(all))
	for _, h := range all {
		if !o.Suspended(from, h.To) {
			kept = append(kept, h)
		}
	}
	return kept
}

func breadthFirst(g *network.Graph, o *network.Overlay, from, to string) ([]string, int) {
	queue := [][]string{{from}}
	visited := make(map[string]struct{})
	expanded := 0
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		node := path[len(path)-1]
		expanded++
		if node == to {
			return path, expanded
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, h := range hops(g, o, node) {
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			queue = append(queue, append(next, h.To))
		}
	}
	return nil, expanded
}

func depthFirst(g *network.Graph, o *network.Overlay, from, to string) ([]string, int) {
	stack := [][]string{{from}}
	visited := make(map[string]struct{})
	expanded := 0
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := path[len(path)-1]
		expanded++
		if node == to {
			return path, expanded
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, h := range hops(g, o, node) {
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			stack = append(stack, append(next, h.To))
		}
	}
	return nil, expanded
}

// frontierItem is one priority-queue entry. Ordering is by f, then g,
// then the tie fields, so equally ranked entries pop in insertion
// order unless a random tie has been assigned.
type frontierItem struct {
	f    float64
	g    int
	tie  float64
	seq  int
	path []string
}

type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	if q[i].tie != q[j].tie {
		return q[i].tie < q[j].tie
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*frontierItem)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}

func greedyBest(g *network.Graph, o *network.Overlay, from, to string, rng *rand.Rand) ([]string, int) {
	q := &frontier{}
	seq := 0
	push := func(f float64, gCost int, path []string) {
		it := &frontierItem{f: f, g: gCost, seq: seq, path: path}
		if rng != nil {
			it.tie = rng.Float64()
		}
		seq++
		heap.Push(q, it)
	}
	push(g.Heuristic(from, to), 0, []string{from})

	visited := make(map[string]struct{})
	expanded := 0
	for q.Len() > 0 {
		it := heap.Pop(q).(*frontierItem)
		node := it.path[len(it.path)-1]
		expanded++
		if node == to {
			return it.path, expanded
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, h := range hops(g, o, node) {
			next := make([]string, len(it.path), len(it.path)+1)
			copy(next, it.path)
			push(g.Heuristic(h.To, to), 0, append(next, h.To))
		}
	}
	return nil, expanded
}

func aStar(g *network.Graph, o *network.Overlay, from, to string, rng *rand.Rand) ([]string, int) {
	q := &frontier{}
	seq := 0
	push := func(f float64, gCost int, path []string) {
		it := &frontierItem{f: f, g: gCost, seq: seq, path: path}
		if rng != nil {
			it.tie = rng.Float64()
		}
		seq++
		heap.Push(q, it)
	}
	push(g.Heuristic(from, to), 0, []string{from})

	visited := make(map[string]struct{})
	expanded := 0
	for q.Len() > 0 {
		it := heap.Pop(q).(*frontierItem)
		node := it.path[len(it.path)-1]
		expanded++
		if node == to {
			return it.path, expanded
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, h := range hops(g, o, node) {
			step := h.Minutes + o.Penalty(node, h.To)
			if g.Line(node) != g.Line(h.To) {
				step += network.TransferPenalty
			}
			ng := it.g + step
			next := make([]string, len(it.path), len(it.path)+1)
			copy(next, it.path)
			push(float64(ng)+g.Heuristic(h.To, to), ng, append(next, h.To))
		}
	}
	return nil, expanded
}
