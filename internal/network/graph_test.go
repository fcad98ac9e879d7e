package network

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/changilink/interlock/internal/domain"
)

func TestForMode(t *testing.T) {
	today, ok := ForMode(domain.ModeToday)
	if !ok {
		t.Fatal("ForMode(today) missing")
	}
	if today.Len() != 38 {
		t.Errorf("today station count = %d, want 38", today.Len())
	}

	future, ok := ForMode(domain.ModeFuture)
	if !ok {
		t.Fatal("ForMode(future) missing")
	}
	if future.Len() != 59 {
		t.Errorf("future station count = %d, want 59", future.Len())
	}

	if _, ok := ForMode("weekend"); ok {
		t.Error("ForMode accepted an unknown mode")
	}
}

func TestStationsSorted(t *testing.T) {
	g, _ := ForMode(domain.ModeToday)
	names := make([]string, 0, g.Len())
	for _, s := range g.Stations() {
		names = append(names, s.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Stations() not sorted: %v", names)
	}
	if names[0] != "Aljunied" {
		t.Errorf("first station = %s, want Aljunied", names[0])
	}
}

func TestNeighborsAuthoredOrder(t *testing.T) {
	today, _ := ForMode(domain.ModeToday)
	got := today.Neighbors("Tampines")
	want := []Hop{{To: "Tampines East", Minutes: 2}, {To: "Simei", Minutes: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("today Neighbors(Tampines) = %v, want %v", got, want)
	}

	future, _ := ForMode(domain.ModeFuture)
	got = future.Neighbors("Tampines")
	want = []Hop{{To: "Pasir Ris", Minutes: 1}, {To: "Tampines East", Minutes: 2}, {To: "Simei", Minutes: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("future Neighbors(Tampines) = %v, want %v", got, want)
	}

	if hops := today.Neighbors("Changi Terminal 5"); hops != nil {
		t.Errorf("today Neighbors(Changi Terminal 5) = %v, want none", hops)
	}
}

func TestTravel(t *testing.T) {
	today, _ := ForMode(domain.ModeToday)
	if w, ok := today.Travel("Expo", "Changi Airport"); !ok || w != 2 {
		t.Errorf("Travel(Expo, Changi Airport) = %d,%v, want 2,true", w, ok)
	}
	if w, ok := today.Travel("Tanah Merah", "Expo"); !ok || w != 3 {
		t.Errorf("Travel(Tanah Merah, Expo) = %d,%v, want 3,true", w, ok)
	}
	if _, ok := today.Travel("Changi Airport", "Marina Bay"); ok {
		t.Error("Travel reported a nonexistent edge")
	}

	future, _ := ForMode(domain.ModeFuture)
	if w, ok := future.Travel("Changi Airport", "Changi Terminal 5"); !ok || w != 2 {
		t.Errorf("future Travel(Changi Airport, Changi Terminal 5) = %d,%v, want 2,true", w, ok)
	}
}

func TestLine(t *testing.T) {
	today, _ := ForMode(domain.ModeToday)
	future, _ := ForMode(domain.ModeFuture)
	if got := today.Line("Bugis"); got != "DTL/EWL" {
		t.Errorf("today Line(Bugis) = %q", got)
	}
	if got := future.Line("Tanah Merah"); got != "EWL/TECL" {
		t.Errorf("future Line(Tanah Merah) = %q", got)
	}
	if got := today.Line("Changi Terminal 5"); got != "" {
		t.Errorf("today Line(Changi Terminal 5) = %q, want empty", got)
	}
}

func TestHeuristic(t *testing.T) {
	g, _ := ForMode(domain.ModeToday)
	got := g.Heuristic("Changi Airport", "Expo")
	want := math.Sqrt(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Heuristic(Changi Airport, Expo) = %v, want %v", got, want)
	}
	if g.Heuristic("Expo", "Expo") != 0 {
		t.Error("Heuristic of a station to itself is nonzero")
	}
}

func TestTransfers(t *testing.T) {
	g, _ := ForMode(domain.ModeToday)
	if n := g.Transfers([]string{"Tampines", "Simei", "Tanah Merah"}); n != 0 {
		t.Errorf("Transfers on single line = %d, want 0", n)
	}
	if n := g.Transfers([]string{"Upper Changi", "Expo"}); n != 1 {
		t.Errorf("Transfers DTL to EWL = %d, want 1", n)
	}
}

func TestPathCost(t *testing.T) {
	g, _ := ForMode(domain.ModeToday)
	path := []string{"Tanah Merah", "Expo", "Changi Airport"}

	cost, err := g.PathCost(path, nil)
	if err != nil {
		t.Fatalf("PathCost() error = %v", err)
	}
	if cost != 5 {
		t.Errorf("PathCost() = %d, want 5", cost)
	}

	overlay := NewOverlay(domain.Disruption{
		Penalties: []domain.EdgePenalty{{From: "Expo", To: "Changi Airport", Minutes: 5}},
	})
	cost, err = g.PathCost(path, overlay)
	if err != nil {
		t.Fatalf("PathCost() with penalty error = %v", err)
	}
	if cost != 10 {
		t.Errorf("PathCost() with penalty = %d, want 10", cost)
	}

	overlay = NewOverlay(domain.Disruption{
		Suspended: []domain.Edge{{From: "Tanah Merah", To: "Expo"}},
	})
	if _, err := g.PathCost(path, overlay); err == nil {
		t.Error("PathCost() over a suspended edge succeeded")
	}
}

func TestPathCostUnknownEdge(t *testing.T) {
	g, _ := ForMode(domain.ModeToday)
	if _, err := g.PathCost([]string{"Tampines", "Bedok"}, nil); err == nil {
		t.Error("PathCost() over a missing edge succeeded")
	}
}

func TestOverlayBothDirections(t *testing.T) {
	o := NewOverlay(domain.Disruption{
		Suspended: []domain.Edge{{From: "Tanah Merah", To: "Expo"}},
		Penalties: []domain.EdgePenalty{{From: "Expo", To: "Changi Airport", Minutes: 5}},
	})
	if !o.Suspended("Tanah Merah", "Expo") || !o.Suspended("Expo", "Tanah Merah") {
		t.Error("suspension does not cover both directions")
	}
	if o.Penalty("Expo", "Changi Airport") != 5 || o.Penalty("Changi Airport", "Expo") != 5 {
		t.Error("penalty does not cover both directions")
	}
	if o.Suspended("Expo", "Changi Airport") {
		t.Error("penalised edge reported as suspended")
	}

	var nilOverlay *Overlay
	if nilOverlay.Suspended("A", "B") || nilOverlay.Penalty("A", "B") != 0 {
		t.Error("nil overlay restricts edges")
	}
}
