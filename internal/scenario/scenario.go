// Package scenario ships the operational scenario catalog: named fact
// sets from the Changi extensions programme used to exercise the rule
// base, embedded so deployments need no data files.
package scenario

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/changilink/interlock/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Scenario is one catalog entry: a fact set, the mode to check it
// under and the consistency outcome the checker should reach.
type Scenario struct {
	ID               string        `yaml:"id" json:"id"`
	Name             string        `yaml:"name" json:"name"`
	Mode             domain.Mode   `yaml:"mode" json:"mode"`
	Facts            []domain.Fact `yaml:"facts" json:"facts"`
	ExpectConsistent bool          `yaml:"expect_consistent" json:"expect_consistent"`
	Notes            string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Catalog parses and validates the embedded catalog, in file order.
func Catalog() ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Scenarios))
	for _, sc := range doc.Scenarios {
		if sc.ID == "" {
			return nil, fmt.Errorf("scenario %q has no id", sc.Name)
		}
		if _, dup := seen[sc.ID]; dup {
			return nil, fmt.Errorf("scenario id %s listed twice", sc.ID)
		}
		seen[sc.ID] = struct{}{}
		if !domain.ValidMode(sc.Mode) {
			return nil, fmt.Errorf("scenario %s has unknown mode %q", sc.ID, sc.Mode)
		}
		if len(sc.Facts) == 0 {
			return nil, fmt.Errorf("scenario %s has no facts", sc.ID)
		}
		for _, f := range sc.Facts {
			if f.Name == "" {
				return nil, fmt.Errorf("scenario %s has a fact with no name", sc.ID)
			}
		}
	}
	return doc.Scenarios, nil
}
