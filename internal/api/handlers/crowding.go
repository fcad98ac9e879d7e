package handlers

import (
	"errors"
	"net/http"

	"github.com/changilink/interlock/internal/bayes"
	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

type CrowdingHandler struct {
	svc *service.CrowdingService
}

func NewCrowdingHandler(svc *service.CrowdingService) *CrowdingHandler {
	return &CrowdingHandler{svc: svc}
}

// Forecast returns the crowding posterior for the evidence supplied in
// the query string. All parameters are optional.
func (h *CrowdingHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cq := domain.CrowdingQuery{
		Weather:       domain.Weather(q.Get("weather")),
		TimeOfDay:     domain.TimeOfDay(q.Get("time_of_day")),
		DayType:       domain.DayType(q.Get("day_type")),
		Mode:          domain.Mode(q.Get("mode")),
		ServiceStatus: domain.ServiceStatus(q.Get("service_status")),
	}

	forecast, err := h.svc.Predict(cq)
	if err != nil {
		switch {
		case errors.Is(err, bayes.ErrUnknownState),
			errors.Is(err, bayes.ErrUnknownVariable):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "forecast failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}
