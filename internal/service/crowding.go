package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/bayes"
	"github.com/changilink/interlock/internal/domain"
)

// CrowdingService forecasts platform crowding risk from a Bayesian
// network over weather, time of day, day type, network mode, service
// status and passenger demand. The conditional tables are calibrated
// for the airport corridor and fixed at build time.
type CrowdingService struct {
	net    *bayes.Network
	logger *zap.Logger
}

// NewCrowdingService builds the crowding network. The tables are
// authored in this file, so a construction error is a programming
// error and panics.
func NewCrowdingService(logger *zap.Logger) *CrowdingService {
	net, err := crowdingNetwork()
	if err != nil {
		panic(fmt.Sprintf("crowding network: %v", err))
	}
	return &CrowdingService{net: net, logger: logger}
}

// Predict returns the crowding posterior under the query's evidence.
// Fields left empty are marginalised out rather than assumed.
func (s *CrowdingService) Predict(q domain.CrowdingQuery) (*domain.CrowdingForecast, error) {
	ev := make(map[string]string)
	if q.Weather != "" {
		ev["weather"] = string(q.Weather)
	}
	if q.TimeOfDay != "" {
		ev["time_of_day"] = string(q.TimeOfDay)
	}
	if q.DayType != "" {
		ev["day_type"] = string(q.DayType)
	}
	if q.Mode != "" {
		ev["network_mode"] = string(q.Mode)
	}
	if q.ServiceStatus != "" {
		ev["service_status"] = string(q.ServiceStatus)
	}

	risk, err := s.net.Query("crowding", ev)
	if err != nil {
		return nil, err
	}
	status, err := s.net.Query("service_status", ev)
	if err != nil {
		return nil, err
	}

	forecast := &domain.CrowdingForecast{
		Risk:          make(map[domain.RiskBand]float64, len(risk)),
		ServiceStatus: make(map[domain.ServiceStatus]float64, len(status)),
	}
	for state, p := range risk {
		forecast.Risk[domain.RiskBand(state)] = p
	}
	for state, p := range status {
		forecast.ServiceStatus[domain.ServiceStatus(state)] = p
	}
	if len(ev) > 0 {
		forecast.Evidence = ev
	}

	// Argmax in band order, first winner on ties.
	best := -1.0
	for _, band := range []domain.RiskBand{domain.RiskLow, domain.RiskMedium, domain.RiskHigh} {
		if p := forecast.Risk[band]; p > best {
			best = p
			forecast.Band = band
		}
	}

	s.logger.Debug("crowding forecast",
		zap.Int("evidence", len(ev)),
		zap.String("band", string(forecast.Band)),
		zap.Float64("p", best))
	return forecast, nil
}

// crowdingNetwork wires the corridor model. Each conditional table
// lists one row per state; columns run over the parent combinations
// with the last-listed parent varying fastest.
func crowdingNetwork() (*bayes.Network, error) {
	net := bayes.New()
	vars := []bayes.Variable{
		{
			Name:   "weather",
			States: []string{"clear", "rainy", "thunderstorms"},
			Rows: [][]float64{
				{0.60},
				{0.30},
				{0.10},
			},
		},
		{
			Name:   "time_of_day",
			States: []string{"morning", "afternoon", "evening"},
			Rows: [][]float64{
				{0.33},
				{0.33},
				{0.34},
			},
		},
		{
			Name:   "day_type",
			States: []string{"weekday", "weekend"},
			Rows: [][]float64{
				{0.71},
				{0.29},
			},
		},
		{
			Name:   "network_mode",
			States: []string{"today", "future"},
			Rows: [][]float64{
				{0.50},
				{0.50},
			},
		},
		{
			Name:    "service_status",
			States:  []string{"normal", "reduced", "disrupted"},
			Parents: []string{"weather"},
			// Columns: clear, rainy, thunderstorms.
			Rows: [][]float64{
				{0.85, 0.70, 0.50},
				{0.12, 0.20, 0.30},
				{0.03, 0.10, 0.20},
			},
		},
		{
			Name:    "demand",
			States:  []string{"low", "medium", "high"},
			Parents: []string{"time_of_day", "day_type", "network_mode"},
			// Columns: (morning..evening) x (weekday, weekend) x (today, future).
			Rows: [][]float64{
				{0.15, 0.25, 0.35, 0.45, 0.20, 0.30, 0.30, 0.40, 0.10, 0.20, 0.25, 0.35},
				{0.40, 0.50, 0.45, 0.40, 0.40, 0.45, 0.45, 0.45, 0.35, 0.45, 0.45, 0.45},
				{0.45, 0.25, 0.20, 0.15, 0.40, 0.25, 0.25, 0.15, 0.55, 0.35, 0.30, 0.20},
			},
		},
		{
			Name:    "crowding",
			States:  []string{"low", "medium", "high"},
			Parents: []string{"demand", "service_status", "network_mode"},
			// Columns: (low..high demand) x (normal..disrupted) x (today, future).
			Rows: [][]float64{
				{0.80, 0.85, 0.60, 0.70, 0.40, 0.50, 0.50, 0.60, 0.30, 0.40, 0.15, 0.25, 0.25, 0.35, 0.10, 0.20, 0.05, 0.10},
				{0.15, 0.12, 0.30, 0.25, 0.40, 0.35, 0.40, 0.35, 0.50, 0.45, 0.50, 0.45, 0.50, 0.45, 0.45, 0.40, 0.30, 0.25},
				{0.05, 0.03, 0.10, 0.05, 0.20, 0.15, 0.10, 0.05, 0.20, 0.15, 0.35, 0.30, 0.25, 0.20, 0.45, 0.40, 0.65, 0.65},
			},
		},
	}
	for _, v := range vars {
		if err := net.Add(v); err != nil {
			return nil, err
		}
	}
	return net, nil
}
