package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/bayes"
	"github.com/changilink/interlock/internal/domain"
)

func TestCrowdingPredictNoEvidence(t *testing.T) {
	svc := NewCrowdingService(zap.NewNop())

	forecast, err := svc.Predict(domain.CrowdingQuery{})
	require.NoError(t, err)
	assert.Nil(t, forecast.Evidence)

	sum := 0.0
	for _, band := range []domain.RiskBand{domain.RiskLow, domain.RiskMedium, domain.RiskHigh} {
		p, ok := forecast.Risk[band]
		require.True(t, ok, "risk missing band %s", band)
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-9)

	// Unconditioned service status follows the weather prior:
	// P(normal) = 0.6*0.85 + 0.3*0.70 + 0.1*0.50 = 0.77.
	assert.InDelta(t, 0.77, forecast.ServiceStatus[domain.ServiceNormal], 1e-9)
}

func TestCrowdingPredictMorningPeak(t *testing.T) {
	svc := NewCrowdingService(zap.NewNop())

	forecast, err := svc.Predict(domain.CrowdingQuery{
		TimeOfDay:     domain.TimeMorning,
		DayType:       domain.DayWeekday,
		Mode:          domain.ModeToday,
		ServiceStatus: domain.ServiceNormal,
	})
	require.NoError(t, err)

	// Demand on a weekday morning today is (0.15, 0.40, 0.45), so
	// P(crowding=low) = 0.15*0.80 + 0.40*0.50 + 0.45*0.25 = 0.4325
	// P(crowding=med) = 0.15*0.15 + 0.40*0.40 + 0.45*0.50 = 0.4075
	// P(crowding=high) = 0.15*0.05 + 0.40*0.10 + 0.45*0.25 = 0.1600
	assert.InDelta(t, 0.4325, forecast.Risk[domain.RiskLow], 1e-9)
	assert.InDelta(t, 0.4075, forecast.Risk[domain.RiskMedium], 1e-9)
	assert.InDelta(t, 0.16, forecast.Risk[domain.RiskHigh], 1e-9)
	assert.Equal(t, domain.RiskLow, forecast.Band)
	assert.Len(t, forecast.Evidence, 4)
}

func TestCrowdingPredictDisruptedMorning(t *testing.T) {
	svc := NewCrowdingService(zap.NewNop())

	forecast, err := svc.Predict(domain.CrowdingQuery{
		TimeOfDay:     domain.TimeMorning,
		DayType:       domain.DayWeekday,
		Mode:          domain.ModeToday,
		ServiceStatus: domain.ServiceDisrupted,
	})
	require.NoError(t, err)

	// Same demand mix against the disrupted columns:
	// P(crowding=high) = 0.15*0.20 + 0.40*0.35 + 0.45*0.65 = 0.4625
	assert.InDelta(t, 0.4625, forecast.Risk[domain.RiskHigh], 1e-9)
	assert.Equal(t, domain.RiskHigh, forecast.Band)

	// Evidence on service status makes it certain.
	assert.InDelta(t, 1, forecast.ServiceStatus[domain.ServiceDisrupted], 1e-9)
}

func TestCrowdingThunderstormsShiftStatus(t *testing.T) {
	svc := NewCrowdingService(zap.NewNop())

	clear, err := svc.Predict(domain.CrowdingQuery{Weather: domain.WeatherClear})
	require.NoError(t, err)
	storm, err := svc.Predict(domain.CrowdingQuery{Weather: domain.WeatherThunderstorms})
	require.NoError(t, err)

	assert.InDelta(t, 0.20, storm.ServiceStatus[domain.ServiceDisrupted], 1e-9)
	assert.Less(t, storm.ServiceStatus[domain.ServiceNormal], clear.ServiceStatus[domain.ServiceNormal],
		"storms should lower the odds of normal service")
	assert.Greater(t, storm.Risk[domain.RiskHigh], clear.Risk[domain.RiskHigh],
		"storms should raise high crowding risk")
}

func TestCrowdingPredictBadEvidence(t *testing.T) {
	svc := NewCrowdingService(zap.NewNop())

	_, err := svc.Predict(domain.CrowdingQuery{Weather: "hazy"})
	require.ErrorIs(t, err, bayes.ErrUnknownState)
}
