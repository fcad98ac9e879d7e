package domain

import (
	"sort"
	"strings"
)

// Proposition is an atomic statement about the network, such as
// "Station_Open_TanahMerah", optionally negated. Two propositions are
// complementary when they name the same atom with opposite signs.
type Proposition struct {
	Name    string `json:"name"`
	Negated bool   `json:"negated,omitempty"`
}

// Prop returns the positive proposition for name.
func Prop(name string) Proposition {
	return Proposition{Name: name}
}

// Not returns the negated proposition for name.
func Not(name string) Proposition {
	return Proposition{Name: name, Negated: true}
}

// Negate returns the proposition with its sign flipped.
func (p Proposition) Negate() Proposition {
	p.Negated = !p.Negated
	return p
}

// Complements reports whether p and q name the same atom with opposite signs.
func (p Proposition) Complements(q Proposition) bool {
	return p.Name == q.Name && p.Negated != q.Negated
}

func (p Proposition) String() string {
	if p.Negated {
		return "¬" + p.Name
	}
	return p.Name
}

func compareProps(a, b Proposition) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case a.Negated == b.Negated:
		return 0
	case a.Negated:
		return 1
	default:
		return -1
	}
}

// Clause is a disjunction of propositions with set semantics: adding a
// literal twice has no effect. The empty clause stands for falsity.
type Clause struct {
	props map[Proposition]struct{}
}

// NewClause builds a clause from the given literals, discarding duplicates.
func NewClause(props ...Proposition) Clause {
	c := Clause{props: make(map[Proposition]struct{}, len(props))}
	for _, p := range props {
		c.props[p] = struct{}{}
	}
	return c
}

// Len returns the number of distinct literals in the clause.
func (c Clause) Len() int { return len(c.props) }

// Empty reports whether the clause has no literals, i.e. is the
// contradiction ⊥.
func (c Clause) Empty() bool { return len(c.props) == 0 }

// Has reports whether the clause contains exactly the literal p.
func (c Clause) Has(p Proposition) bool {
	_, ok := c.props[p]
	return ok
}

// Unit returns the sole literal of a one-literal clause.
func (c Clause) Unit() (Proposition, bool) {
	if len(c.props) != 1 {
		return Proposition{}, false
	}
	for p := range c.props {
		return p, true
	}
	return Proposition{}, false
}

// Tautology reports whether the clause contains a literal and its
// complement, making it vacuously true.
func (c Clause) Tautology() bool {
	for p := range c.props {
		if _, ok := c.props[p.Negate()]; ok {
			return true
		}
	}
	return false
}

// Props returns the literals in canonical order: by name, positive
// before negative.
func (c Clause) Props() []Proposition {
	out := make([]Proposition, 0, len(c.props))
	for p := range c.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return compareProps(out[i], out[j]) < 0 })
	return out
}

// Key returns a canonical textual form of the clause, identical for any
// two clauses with the same literal set.
func (c Clause) Key() string {
	props := c.Props()
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

// Resolve returns the resolvent of c and other on the literal on, which
// must occur in c while its complement occurs in other. The result holds
// every remaining literal of both clauses.
func (c Clause) Resolve(other Clause, on Proposition) Clause {
	r := Clause{props: make(map[Proposition]struct{}, len(c.props)+len(other.props)-2)}
	for p := range c.props {
		if p != on {
			r.props[p] = struct{}{}
		}
	}
	neg := on.Negate()
	for p := range other.props {
		if p != neg {
			r.props[p] = struct{}{}
		}
	}
	return r
}

func (c Clause) String() string {
	if c.Empty() {
		return "⊥"
	}
	props := c.Props()
	if len(props) == 1 {
		return props[0].String()
	}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}

// Fact asserts a truth value for a named proposition, as observed or
// assumed for one consistency check.
type Fact struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// Proposition returns the literal the fact asserts: the positive atom
// for a true fact, the negated atom for a false one.
func (f Fact) Proposition() Proposition {
	return Proposition{Name: f.Name, Negated: !f.Value}
}

func (f Fact) String() string {
	if f.Value {
		return f.Name + "=true"
	}
	return f.Name + "=false"
}

// FactsFromMap converts a name to value mapping into a fact list sorted
// by name, so callers that collect facts in maps get a stable order.
func FactsFromMap(m map[string]bool) []Fact {
	out := make([]Fact, 0, len(m))
	for name, v := range m {
		out = append(out, Fact{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
