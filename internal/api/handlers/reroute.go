package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

type RerouteHandler struct {
	svc *service.ReroutingService
}

func NewRerouteHandler(svc *service.ReroutingService) *RerouteHandler {
	return &RerouteHandler{svc: svc}
}

type edgePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type penaltyPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Minutes int    `json:"minutes"`
}

type pairPayload struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type rerouteRequest struct {
	Mode       string `json:"mode"`
	Strategy   string `json:"strategy"`
	Seed       int64  `json:"seed,omitempty"`
	Disruption *struct {
		Suspended []edgePayload    `json:"suspended"`
		Penalties []penaltyPayload `json:"penalties"`
	} `json:"disruption,omitempty"`
	Pairs []pairPayload `json:"pairs,omitempty"`
}

// Optimize reroutes journeys around a disruption. Omitting the
// disruption uses the Tanah Merah-Expo closure exercise; omitting the
// pairs uses the standard demand sample.
func (h *RerouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req rerouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Strategy == "" {
		req.Strategy = string(domain.StrategyLocalSearch)
	}

	d := service.DefaultDisruption()
	if req.Disruption != nil {
		d = domain.Disruption{}
		for _, e := range req.Disruption.Suspended {
			d.Suspended = append(d.Suspended, domain.Edge{From: e.From, To: e.To})
		}
		for _, p := range req.Disruption.Penalties {
			d.Penalties = append(d.Penalties, domain.EdgePenalty{From: p.From, To: p.To, Minutes: p.Minutes})
		}
	}

	var pairs []domain.ODPair
	for _, p := range req.Pairs {
		pairs = append(pairs, domain.ODPair{Origin: p.Origin, Destination: p.Destination})
	}

	report, err := h.svc.Optimize(domain.Mode(req.Mode), domain.Strategy(req.Strategy), d, pairs, req.Seed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMode),
			errors.Is(err, service.ErrUnknownStrategy):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStationNotFound),
			errors.Is(err, service.ErrRouteNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "rerouting failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}
