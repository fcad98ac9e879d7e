package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/scenario"
)

// ErrScenarioNotFound flags a scenario id absent from the catalog.
var ErrScenarioNotFound = errors.New("scenario not found")

// scenarioRunConcurrency bounds the parallel checks in RunAll.
const scenarioRunConcurrency = 4

// ScenarioRun is the outcome of checking one catalog scenario.
type ScenarioRun struct {
	Scenario scenario.Scenario    `json:"scenario"`
	Verdict  *domain.Verdict      `json:"verdict"`
	Warnings []domain.RuleWarning `json:"warnings,omitempty"`
	Matches  bool                 `json:"matches_expectation"`
}

// ScenarioService runs the embedded operational scenarios through the
// consistency checker and compares the verdicts with the catalog's
// expectations.
type ScenarioService struct {
	validator *ValidationService
	catalog   []scenario.Scenario
	byID      map[string]int
	logger    *zap.Logger
}

func NewScenarioService(validator *ValidationService, logger *zap.Logger) (*ScenarioService, error) {
	catalog, err := scenario.Catalog()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(catalog))
	for i, sc := range catalog {
		byID[sc.ID] = i
	}
	return &ScenarioService{
		validator: validator,
		catalog:   catalog,
		byID:      byID,
		logger:    logger,
	}, nil
}

// Scenarios returns the catalog in its authored order.
func (s *ScenarioService) Scenarios() []scenario.Scenario {
	out := make([]scenario.Scenario, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Run checks a single scenario by id.
func (s *ScenarioService) Run(id string) (*ScenarioRun, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}
	return s.run(s.catalog[i])
}

// RunAll checks every scenario, a few at a time, and returns the
// outcomes in catalog order.
func (s *ScenarioService) RunAll(ctx context.Context) ([]ScenarioRun, error) {
	results := make([]ScenarioRun, len(s.catalog))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scenarioRunConcurrency)
	for i := range s.catalog {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			run, err := s.run(s.catalog[i])
			if err != nil {
				return err
			}
			results[i] = *run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matched := 0
	for _, r := range results {
		if r.Matches {
			matched++
		}
	}
	s.logger.Info("scenario sweep",
		zap.Int("scenarios", len(results)),
		zap.Int("matched", matched))
	return results, nil
}

func (s *ScenarioService) run(sc scenario.Scenario) (*ScenarioRun, error) {
	verdict, warnings, err := s.validator.Check(sc.Facts, sc.Mode)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.ID, err)
	}
	return &ScenarioRun{
		Scenario: sc,
		Verdict:  verdict,
		Warnings: warnings,
		Matches:  verdict.Consistent == sc.ExpectConsistent,
	}, nil
}
