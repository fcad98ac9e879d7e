// Package network holds the rail network data for both operating modes
// and the graph operations the planners run on: adjacency, travel
// times, line lookups, straight-line heuristics and path costing with
// transfer penalties.
package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/changilink/interlock/internal/domain"
)

// TransferPenalty is the extra minutes charged whenever a path moves
// between stations served by different line groups.
const TransferPenalty = 2

// Station is one stop with its line label and map coordinates.
// Interchanges carry compound labels such as "DTL/EWL"; a change
// between any two distinct labels counts as a transfer.
type Station struct {
	Name string  `json:"name"`
	Line string  `json:"line"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Hop is a directed connection to an adjacent station with its travel
// time in minutes.
type Hop struct {
	To      string `json:"to"`
	Minutes int    `json:"minutes"`
}

// Graph is the immutable network for one mode. Adjacency is directed
// and kept exactly as authored, including one-way service quirks, so
// planner results stay reproducible.
type Graph struct {
	mode     domain.Mode
	stations map[string]Station
	adj      map[string][]Hop
	names    []string
}

var (
	todayGraph  = newGraph(domain.ModeToday, todayStations, todayHops)
	futureGraph = newGraph(domain.ModeFuture, futureStations, futureHops)
)

// ForMode returns the network graph for the given mode.
func ForMode(m domain.Mode) (*Graph, bool) {
	switch m {
	case domain.ModeToday:
		return todayGraph, true
	case domain.ModeFuture:
		return futureGraph, true
	}
	return nil, false
}

// newGraph assembles and checks a mode's tables. The tables are
// compiled in, so inconsistencies are programming errors and panic.
func newGraph(mode domain.Mode, stations []Station, hops map[string][]Hop) *Graph {
	g := &Graph{
		mode:     mode,
		stations: make(map[string]Station, len(stations)),
		adj:      hops,
		names:    make([]string, 0, len(stations)),
	}
	for _, s := range stations {
		if s.Name == "" || s.Line == "" {
			panic(fmt.Sprintf("network: %s station %q has no line", mode, s.Name))
		}
		if _, dup := g.stations[s.Name]; dup {
			panic(fmt.Sprintf("network: %s station %q listed twice", mode, s.Name))
		}
		g.stations[s.Name] = s
		g.names = append(g.names, s.Name)
	}
	for from, out := range hops {
		if _, ok := g.stations[from]; !ok {
			panic(fmt.Sprintf("network: %s adjacency names unknown station %q", mode, from))
		}
		for _, h := range out {
			if _, ok := g.stations[h.To]; !ok {
				panic(fmt.Sprintf("network: %s edge %s-%s names unknown station", mode, from, h.To))
			}
			if h.Minutes <= 0 {
				panic(fmt.Sprintf("network: %s edge %s-%s has travel time %d", mode, from, h.To, h.Minutes))
			}
		}
	}
	sort.Strings(g.names)
	return g
}

// Mode returns the mode the graph describes.
func (g *Graph) Mode() domain.Mode { return g.mode }

// Has reports whether the graph knows the named station.
func (g *Graph) Has(name string) bool {
	_, ok := g.stations[name]
	return ok
}

// Station returns the named station.
func (g *Graph) Station(name string) (Station, bool) {
	s, ok := g.stations[name]
	return s, ok
}

// Stations returns every station sorted by name.
func (g *Graph) Stations() []Station {
	out := make([]Station, 0, len(g.names))
	for _, n := range g.names {
		out = append(out, g.stations[n])
	}
	return out
}

// Len returns the number of stations in the graph.
func (g *Graph) Len() int { return len(g.names) }

// Neighbors returns the outgoing hops from a station in authored
// order. Unknown stations have no hops.
func (g *Graph) Neighbors(name string) []Hop {
	return g.adj[name]
}

// Travel returns the travel time of the directed edge from-to.
func (g *Graph) Travel(from, to string) (int, bool) {
	for _, h := range g.adj[from] {
		if h.To == to {
			return h.Minutes, true
		}
	}
	return 0, false
}

// Line returns the line label of a station, or an empty string for
// unknown stations.
func (g *Graph) Line(name string) string {
	return g.stations[name].Line
}

// Heuristic returns the straight-line distance between two stations on
// the mode's own coordinates. Unknown stations sit at the origin.
func (g *Graph) Heuristic(a, b string) float64 {
	sa := g.stations[a]
	sb := g.stations[b]
	dx := sa.X - sb.X
	dy := sa.Y - sb.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Transfers counts the line changes along a path.
func (g *Graph) Transfers(path []string) int {
	n := 0
	for i := 0; i+1 < len(path); i++ {
		if g.Line(path[i]) != g.Line(path[i+1]) {
			n++
		}
	}
	return n
}

// PathCost sums travel minutes along a path, charging TransferPenalty
// at every line change and any overlay penalty on the edges used. It
// fails if the path uses an edge the graph does not have or one the
// overlay suspends.
func (g *Graph) PathCost(path []string, o *Overlay) (int, error) {
	cost := 0
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		w, ok := g.Travel(from, to)
		if !ok {
			return 0, fmt.Errorf("no edge %s-%s in %s network", from, to, g.mode)
		}
		if o.Suspended(from, to) {
			return 0, fmt.Errorf("edge %s-%s is suspended", from, to)
		}
		cost += w + o.Penalty(from, to)
		if g.Line(from) != g.Line(to) {
			cost += TransferPenalty
		}
	}
	return cost, nil
}

// Overlay applies a disruption to a graph without copying it: lookups
// report suspended edges and extra minutes on degraded ones. Both
// directions of every listed edge are affected. A nil overlay changes
// nothing.
type Overlay struct {
	suspended map[domain.Edge]struct{}
	penalties map[domain.Edge]int
}

// NewOverlay builds an overlay from a disruption.
func NewOverlay(d domain.Disruption) *Overlay {
	o := &Overlay{
		suspended: make(map[domain.Edge]struct{}, 2*len(d.Suspended)),
		penalties: make(map[domain.Edge]int, 2*len(d.Penalties)),
	}
	for _, e := range d.Suspended {
		o.suspended[domain.Edge{From: e.From, To: e.To}] = struct{}{}
		o.suspended[domain.Edge{From: e.To, To: e.From}] = struct{}{}
	}
	for _, p := range d.Penalties {
		o.penalties[domain.Edge{From: p.From, To: p.To}] = p.Minutes
		o.penalties[domain.Edge{From: p.To, To: p.From}] = p.Minutes
	}
	return o
}

// Suspended reports whether the directed edge is closed.
func (o *Overlay) Suspended(from, to string) bool {
	if o == nil {
		return false
	}
	_, ok := o.suspended[domain.Edge{From: from, To: to}]
	return ok
}

// Penalty returns the extra minutes charged on the directed edge.
func (o *Overlay) Penalty(from, to string) int {
	if o == nil {
		return 0
	}
	return o.penalties[domain.Edge{From: from, To: to}]
}
