package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/domain"
)

const (
	defaultAdvisoryLimit = 50
	maxAdvisoryLimit     = 200
)

// ComposeParams describes the journey an advisory is composed for.
// Algorithm defaults to A*; Facts supplement and override the facts
// derived from the planned route; Crowding carries any evidence the
// caller has beyond the network mode.
type ComposeParams struct {
	Origin      string
	Destination string
	Mode        domain.Mode
	Algorithm   domain.Algorithm
	Facts       []domain.Fact
	Crowding    domain.CrowdingQuery
}

// AdvisoryService composes travel advisories: it plans the journey,
// checks the operational facts for rule violations, forecasts crowding
// and persists the published result.
type AdvisoryService struct {
	store     domain.AdvisoryStore
	validator *ValidationService
	routes    *RouteService
	crowding  *CrowdingService
	logger    *zap.Logger
}

func NewAdvisoryService(store domain.AdvisoryStore, validator *ValidationService, routes *RouteService, crowding *CrowdingService, logger *zap.Logger) *AdvisoryService {
	return &AdvisoryService{
		store:     store,
		validator: validator,
		routes:    routes,
		crowding:  crowding,
		logger:    logger,
	}
}

// Compose plans, checks and publishes an advisory for the journey.
func (s *AdvisoryService) Compose(ctx context.Context, p ComposeParams) (*domain.Advisory, error) {
	if p.Algorithm == "" {
		p.Algorithm = domain.AlgorithmAStar
	}
	plan, err := s.routes.Plan(p.Origin, p.Destination, p.Mode, p.Algorithm)
	if err != nil {
		return nil, err
	}

	facts := mergeFacts(routeFacts(plan), p.Facts)
	verdict, warnings, err := s.validator.Check(facts, p.Mode)
	if err != nil {
		return nil, err
	}

	cq := p.Crowding
	if cq.Mode == "" {
		cq.Mode = p.Mode
	}
	forecast, err := s.crowding.Predict(cq)
	if err != nil {
		return nil, err
	}

	adv := &domain.Advisory{
		ID:        uuid.New(),
		Mode:      p.Mode,
		Route:     plan,
		Verdict:   verdict,
		Warnings:  warnings,
		Crowding:  forecast,
		Facts:     facts,
		Summary:   summarize(plan, verdict, warnings, forecast),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, adv); err != nil {
		return nil, fmt.Errorf("persist advisory: %w", err)
	}
	s.logger.Info("advisory published",
		zap.String("advisory_id", adv.ID.String()),
		zap.String("mode", string(adv.Mode)),
		zap.String("origin", p.Origin),
		zap.String("destination", p.Destination),
		zap.Bool("consistent", verdict.Consistent),
		zap.String("crowding", string(forecast.Band)))
	return adv, nil
}

// Get returns a published advisory by id.
func (s *AdvisoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Advisory, error) {
	return s.store.GetByID(ctx, id)
}

// List returns published advisories, newest first.
func (s *AdvisoryService) List(ctx context.Context, limit int) ([]domain.Advisory, error) {
	if limit <= 0 {
		limit = defaultAdvisoryLimit
	}
	if limit > maxAdvisoryLimit {
		limit = maxAdvisoryLimit
	}
	return s.store.List(ctx, limit)
}

// routeFacts derives the operational facts implied by a planned route,
// in the vocabulary the rule catalog speaks.
func routeFacts(plan *domain.RoutePlan) []domain.Fact {
	var facts []domain.Fact
	switch plan.Mode {
	case domain.ModeToday:
		facts = append(facts, domain.Fact{Name: "Network_Mode_Today", Value: true})
	case domain.ModeFuture:
		facts = append(facts, domain.Fact{Name: "Network_Mode_Future", Value: true})
	}
	if plan.Origin == "Sungei Bedok" {
		facts = append(facts, domain.Fact{Name: "Origin_Sungei_Bedok", Value: true})
	}
	switch plan.Destination {
	case "Changi Airport":
		facts = append(facts, domain.Fact{Name: "Destination_Changi_Airport", Value: true})
	case "Changi Terminal 5":
		facts = append(facts, domain.Fact{Name: "Destination_T5", Value: true})
	}
	for _, st := range plan.Path {
		if st == "Changi Terminal 5" {
			facts = append(facts, domain.Fact{Name: "Route_Uses_T5", Value: true})
			break
		}
	}
	for _, line := range plan.Lines {
		if strings.Contains(line, "TECL") {
			facts = append(facts, domain.Fact{Name: "Route_Uses_TEL", Value: true})
			break
		}
	}
	return facts
}

// mergeFacts overlays the caller's facts on the derived ones. The
// caller wins on a name clash, and the result is sorted by name.
func mergeFacts(derived, caller []domain.Fact) []domain.Fact {
	byName := make(map[string]bool, len(derived)+len(caller))
	for _, f := range derived {
		byName[f.Name] = f.Value
	}
	for _, f := range caller {
		byName[f.Name] = f.Value
	}
	out := make([]domain.Fact, 0, len(byName))
	for name, value := range byName {
		out = append(out, domain.Fact{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func summarize(plan *domain.RoutePlan, verdict *domain.Verdict, warnings []domain.RuleWarning, forecast *domain.CrowdingForecast) []string {
	lines := []string{
		fmt.Sprintf("Route %s to %s: %d stations, %d min, %d transfer(s) via %s.",
			plan.Origin, plan.Destination, len(plan.Path), plan.Cost, plan.Transfers, plan.Algorithm),
	}
	if verdict.Consistent {
		lines = append(lines, "Operational facts are consistent with the rule catalog.")
	} else {
		lines = append(lines, fmt.Sprintf("Operational facts violate rules %s.",
			strings.Join(verdict.ViolatedRules, ", ")))
	}
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("Advisory %s: %s.", w.RuleID, w.Reason))
	}
	if forecast != nil {
		lines = append(lines, fmt.Sprintf("Crowding risk %s (%.0f%%).",
			forecast.Band, forecast.Risk[forecast.Band]*100))
	}
	return lines
}
