package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/service"
)

type RouteHandler struct {
	svc *service.RouteService
}

func NewRouteHandler(svc *service.RouteService) *RouteHandler {
	return &RouteHandler{svc: svc}
}

type planRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Algorithm   string `json:"algorithm"`
}

// Plan finds a route with one algorithm on one network.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = string(domain.AlgorithmAStar)
	}

	plan, err := h.svc.Plan(req.Origin, req.Destination, domain.Mode(req.Mode), domain.Algorithm(req.Algorithm))
	if err != nil {
		writeRouteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type compareRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Compare plans the journey with every algorithm on every network that
// serves both stations.
func (h *RouteHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	cmp, err := h.svc.Compare(req.Origin, req.Destination)
	if err != nil {
		writeRouteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func writeRouteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, service.ErrUnknownAlgorithm):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStationNotFound),
		errors.Is(err, service.ErrRouteNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "route planning failed")
	}
}
