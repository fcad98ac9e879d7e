package scenario

import (
	"strings"
	"testing"

	"github.com/changilink/interlock/internal/domain"
)

func TestCatalog(t *testing.T) {
	scenarios, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if len(scenarios) != 16 {
		t.Fatalf("catalog holds %d scenarios, want 16", len(scenarios))
	}

	byID := make(map[string]Scenario, len(scenarios))
	for _, sc := range scenarios {
		byID[sc.ID] = sc
		if !strings.HasPrefix(sc.ID, "TELe_") {
			t.Errorf("scenario id %q outside the TELe series", sc.ID)
		}
		if sc.Name == "" {
			t.Errorf("scenario %s has no name", sc.ID)
		}
	}

	first := scenarios[0]
	if first.ID != "TELe_1" || first.Mode != domain.ModeFuture || len(first.Facts) != 5 {
		t.Errorf("TELe_1 = %+v, want future mode with 5 facts", first)
	}

	if sc, ok := byID["TELe_9"]; !ok {
		t.Error("catalog misses TELe_9")
	} else {
		var conversion *domain.Fact
		for i := range sc.Facts {
			if sc.Facts[i].Name == "TELe_Conversion_Complete" {
				conversion = &sc.Facts[i]
			}
		}
		if conversion == nil || conversion.Value {
			t.Errorf("TELe_9 conversion fact = %v, want asserted false", conversion)
		}
	}

	inconsistent := 0
	for _, sc := range scenarios {
		if !sc.ExpectConsistent {
			inconsistent++
		}
	}
	if inconsistent != 5 {
		t.Errorf("catalog expects %d inconsistent scenarios, want 5", inconsistent)
	}
}

func TestCatalogStableOrder(t *testing.T) {
	a, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	b, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("catalog order changed between loads at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
