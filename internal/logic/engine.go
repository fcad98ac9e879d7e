package logic

import (
	"fmt"
	"sort"

	"github.com/changilink/interlock/internal/domain"
)

const defaultClauseLimit = 100000

var noParents = [2]int{-1, -1}

// Engine checks fact sets against a knowledge base by resolution
// refutation. Rules and facts are converted to clauses, then a
// given-clause loop resolves every clause against the already processed
// ones until the empty clause appears or no new clauses can be derived.
// Runs are deterministic for a given rule base, fact set and mode.
type Engine struct {
	kb         *KnowledgeBase
	maxClauses int
}

// NewEngine returns an engine with the default clause cap.
func NewEngine(kb *KnowledgeBase) *Engine {
	return NewBoundedEngine(kb, defaultClauseLimit)
}

// NewBoundedEngine returns an engine that aborts with
// ErrSaturationLimit after deriving maxClauses distinct clauses.
// Non-positive caps fall back to the default.
func NewBoundedEngine(kb *KnowledgeBase, maxClauses int) *Engine {
	if maxClauses <= 0 {
		maxClauses = defaultClauseLimit
	}
	return &Engine{kb: kb, maxClauses: maxClauses}
}

// CheckConsistency reports whether the facts can all hold at once under
// the rules that apply to mode. An inconsistent verdict names the rules
// and facts involved in the contradiction and carries the derivation
// trace. Facts asserting both values of one proposition are rejected
// with ErrConflictingFacts before any resolution runs.
func (e *Engine) CheckConsistency(facts []domain.Fact, mode domain.Mode) (*domain.Verdict, error) {
	if err := checkConflicts(facts); err != nil {
		return nil, err
	}
	u, err := e.seed(facts, mode)
	if err != nil {
		return nil, err
	}
	empty, err := u.saturate()
	if err != nil {
		return nil, err
	}
	if empty < 0 {
		return &domain.Verdict{Consistent: true}, nil
	}
	trace, violated, contra := u.traceBack(empty)
	return &domain.Verdict{
		Consistent:    false,
		ViolatedRules: violated,
		Contradictory: contra,
		Trace:         trace,
	}, nil
}

// Entails reports whether the rules for mode together with the facts
// entail the query, by refuting the universe extended with the query's
// negation.
func (e *Engine) Entails(facts []domain.Fact, mode domain.Mode, query domain.Proposition) (bool, error) {
	if query.Name == "" {
		return false, fmt.Errorf("entails: query names no proposition")
	}
	if err := checkConflicts(facts); err != nil {
		return false, err
	}
	u, err := e.seed(facts, mode)
	if err != nil {
		return false, err
	}
	if _, _, err := u.add(domain.NewClause(query.Negate()), noParents, "", false, domain.Proposition{}); err != nil {
		return false, err
	}
	empty, err := u.saturate()
	if err != nil {
		return false, err
	}
	return empty >= 0, nil
}

func checkConflicts(facts []domain.Fact) error {
	seen := make(map[string]bool, len(facts))
	for _, f := range facts {
		if v, ok := seen[f.Name]; ok && v != f.Value {
			return fmt.Errorf("%w: %s asserted both true and false", ErrConflictingFacts, f.Name)
		}
		seen[f.Name] = f.Value
	}
	return nil
}

// seed builds the initial clause universe: rule clauses in declaration
// order, then fact units sorted by name so the outcome does not depend
// on the order facts were collected in.
func (e *Engine) seed(facts []domain.Fact, mode domain.Mode) (*universe, error) {
	u := newUniverse(e.maxClauses)
	for _, r := range e.kb.RulesForMode(mode) {
		if _, _, err := u.add(r.Clause(), noParents, r.ID, false, domain.Proposition{}); err != nil {
			return nil, err
		}
	}
	sorted := make([]domain.Fact, len(facts))
	copy(sorted, facts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, f := range sorted {
		p := f.Proposition()
		if _, _, err := u.add(domain.NewClause(p), noParents, "", true, p); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// entry is one clause in the arena with its provenance: the rule or
// fact it came from, or the two arena entries it was resolved from.
type entry struct {
	clause   domain.Clause
	parents  [2]int
	ruleID   string
	fromFact bool
	factProp domain.Proposition
}

// universe is the clause arena for one run: entries in derivation
// order, a canonical-key index for dedup, and name postings so a clause
// only meets partners that mention one of its atoms.
type universe struct {
	limit   int
	entries []entry
	byKey   map[string]int
	byName  map[string][]int
}

func newUniverse(limit int) *universe {
	return &universe{
		limit:  limit,
		byKey:  make(map[string]int),
		byName: make(map[string][]int),
	}
}

// add admits a clause to the arena unless it is a tautology or already
// present. It returns the arena index and whether the clause was new.
func (u *universe) add(c domain.Clause, parents [2]int, ruleID string, fromFact bool, factProp domain.Proposition) (int, bool, error) {
	if c.Tautology() {
		return -1, false, nil
	}
	key := c.Key()
	if i, ok := u.byKey[key]; ok {
		return i, false, nil
	}
	if len(u.entries) >= u.limit {
		return -1, false, fmt.Errorf("%w: %d clauses", ErrSaturationLimit, u.limit)
	}
	i := len(u.entries)
	u.entries = append(u.entries, entry{
		clause:   c,
		parents:  parents,
		ruleID:   ruleID,
		fromFact: fromFact,
		factProp: factProp,
	})
	u.byKey[key] = i
	for _, p := range c.Props() {
		u.byName[p.Name] = append(u.byName[p.Name], i)
	}
	return i, true, nil
}

// saturate runs the given-clause loop. Entries are processed in arena
// order; each given clause resolves against every processed clause that
// holds a complementary literal. It returns the arena index of the
// empty clause, or -1 once the universe is saturated.
func (u *universe) saturate() (int, error) {
	for next := 0; next < len(u.entries); next++ {
		given := u.entries[next].clause
		for _, p := range given.Props() {
			neg := p.Negate()
			for _, ci := range u.byName[p.Name] {
				if ci >= next {
					continue
				}
				if !u.entries[ci].clause.Has(neg) {
					continue
				}
				r := given.Resolve(u.entries[ci].clause, p)
				if r.Tautology() {
					continue
				}
				idx, added, err := u.add(r, [2]int{next, ci}, "", false, domain.Proposition{})
				if err != nil {
					return -1, err
				}
				if added && r.Empty() {
					return idx, nil
				}
			}
		}
	}
	return -1, nil
}

// traceBack collects the ancestry of the empty clause and renders it as
// a numbered derivation, together with the violated rule ids and the
// facts implicated in the contradiction.
func (u *universe) traceBack(empty int) ([]domain.Derivation, []string, []domain.Proposition) {
	include := make(map[int]struct{})
	stack := []int{empty}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := include[i]; ok {
			continue
		}
		include[i] = struct{}{}
		if ps := u.entries[i].parents; ps[0] >= 0 {
			stack = append(stack, ps[0], ps[1])
		}
	}

	order := make([]int, 0, len(include))
	for i := range include {
		order = append(order, i)
	}
	sort.Ints(order)
	step := make(map[int]int, len(order))
	for n, i := range order {
		step[i] = n + 1
	}

	trace := make([]domain.Derivation, 0, len(order))
	ruleSet := make(map[string]struct{})
	factSet := make(map[domain.Proposition]struct{})
	var contra []domain.Proposition
	for _, i := range order {
		ent := u.entries[i]
		d := domain.Derivation{Step: step[i], Clause: ent.clause.String()}
		if ent.parents[0] >= 0 {
			d.Parents = []int{step[ent.parents[0]], step[ent.parents[1]]}
			sort.Ints(d.Parents)
		}
		if ent.ruleID != "" {
			d.RuleID = ent.ruleID
			ruleSet[ent.ruleID] = struct{}{}
		}
		if ent.fromFact {
			d.Fact = domain.Fact{Name: ent.factProp.Name, Value: !ent.factProp.Negated}.String()
			if _, ok := factSet[ent.factProp]; !ok {
				factSet[ent.factProp] = struct{}{}
				contra = append(contra, ent.factProp)
			}
		}
		trace = append(trace, d)
	}

	violated := make([]string, 0, len(ruleSet))
	for id := range ruleSet {
		violated = append(violated, id)
	}
	sort.Strings(violated)
	sort.Slice(contra, func(i, j int) bool {
		if contra[i].Name != contra[j].Name {
			return contra[i].Name < contra[j].Name
		}
		return !contra[i].Negated && contra[j].Negated
	})
	return trace, violated, contra
}
