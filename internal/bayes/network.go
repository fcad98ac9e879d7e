// Package bayes implements discrete Bayesian networks with exact
// inference by enumeration. Networks here are small, a handful of
// variables with two or three states each, so enumerating the joint
// distribution is cheaper and simpler than junction trees.
package bayes

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownVariable flags a query or evidence key naming no
	// variable in the network.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrUnknownState flags evidence asserting a state a variable does
	// not have.
	ErrUnknownState = errors.New("unknown state")
)

const probTolerance = 1e-6

// Variable is one node: its states and, per combination of parent
// states, a distribution over those states. Rows holds one row per
// state; within a row, columns enumerate parent combinations with the
// last parent varying fastest.
type Variable struct {
	Name    string
	States  []string
	Parents []string
	Rows    [][]float64

	parentCards []int
	stateIdx    map[string]int
}

func (v *Variable) card() int { return len(v.States) }

// columns returns the number of parent state combinations.
func (v *Variable) columns() int {
	n := 1
	for _, c := range v.parentCards {
		n *= c
	}
	return n
}

// Network is a directed acyclic model over discrete variables. Parents
// must be added before their children, which keeps the insertion order
// topological.
type Network struct {
	vars   []*Variable
	byName map[string]*Variable
}

// New returns an empty network.
func New() *Network {
	return &Network{byName: make(map[string]*Variable)}
}

// Add validates a variable and its table against the already present
// parents: dimensions must match and every column must sum to one.
func (n *Network) Add(v Variable) error {
	if v.Name == "" {
		return fmt.Errorf("bayes: variable with empty name")
	}
	if _, dup := n.byName[v.Name]; dup {
		return fmt.Errorf("bayes: variable %s added twice", v.Name)
	}
	if len(v.States) == 0 {
		return fmt.Errorf("bayes: variable %s has no states", v.Name)
	}
	v.stateIdx = make(map[string]int, len(v.States))
	for i, s := range v.States {
		if _, dup := v.stateIdx[s]; dup {
			return fmt.Errorf("bayes: variable %s repeats state %s", v.Name, s)
		}
		v.stateIdx[s] = i
	}
	v.parentCards = make([]int, len(v.Parents))
	for i, p := range v.Parents {
		pv, ok := n.byName[p]
		if !ok {
			return fmt.Errorf("%w: %s (parent of %s)", ErrUnknownVariable, p, v.Name)
		}
		v.parentCards[i] = pv.card()
	}
	if len(v.Rows) != v.card() {
		return fmt.Errorf("bayes: variable %s has %d rows, want %d", v.Name, len(v.Rows), v.card())
	}
	cols := v.columns()
	for s, row := range v.Rows {
		if len(row) != cols {
			return fmt.Errorf("bayes: variable %s state %s has %d columns, want %d", v.Name, v.States[s], len(row), cols)
		}
	}
	for c := 0; c < cols; c++ {
		sum := 0.0
		for s := 0; s < v.card(); s++ {
			p := v.Rows[s][c]
			if p < 0 || p > 1 {
				return fmt.Errorf("bayes: variable %s column %d holds probability %v", v.Name, c, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > probTolerance {
			return fmt.Errorf("bayes: variable %s column %d sums to %v", v.Name, c, sum)
		}
	}
	n.byName[v.Name] = &v
	n.vars = append(n.vars, &v)
	return nil
}

// Variable returns the named variable.
func (n *Network) Variable(name string) (*Variable, bool) {
	v, ok := n.byName[name]
	return v, ok
}

// Len returns the number of variables in the network.
func (n *Network) Len() int { return len(n.vars) }

// prob returns P(state | parent assignment).
func (v *Variable) prob(state int, assign map[string]int) float64 {
	col := 0
	for i, p := range v.Parents {
		col = col*v.parentCards[i] + assign[p]
	}
	return v.Rows[state][col]
}

// Query returns the posterior distribution of target given the
// evidence, by summing the joint over every assignment consistent with
// it. Evidence keys must name variables and values must name states.
func (n *Network) Query(target string, evidence map[string]string) (map[string]float64, error) {
	tv, ok := n.byName[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, target)
	}
	fixed := make(map[string]int, len(evidence))
	for name, state := range evidence {
		v, ok := n.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
		}
		si, ok := v.stateIdx[state]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no state %q", ErrUnknownState, name, state)
		}
		fixed[name] = si
	}

	post := make([]float64, tv.card())
	assign := make(map[string]int, len(n.vars))
	var walk func(i int, p float64)
	walk = func(i int, p float64) {
		if p == 0 {
			return
		}
		if i == len(n.vars) {
			post[assign[target]] += p
			return
		}
		v := n.vars[i]
		if si, ok := fixed[v.Name]; ok {
			assign[v.Name] = si
			walk(i+1, p*v.prob(si, assign))
			return
		}
		for si := 0; si < v.card(); si++ {
			assign[v.Name] = si
			walk(i+1, p*v.prob(si, assign))
		}
	}
	walk(0, 1)

	total := 0.0
	for _, p := range post {
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("bayes: evidence has zero probability")
	}
	out := make(map[string]float64, tv.card())
	for i, s := range tv.States {
		out[s] = post[i] / total
	}
	return out, nil
}
