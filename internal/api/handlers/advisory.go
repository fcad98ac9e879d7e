package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/changilink/interlock/internal/bayes"
	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
	"github.com/changilink/interlock/internal/store"
)

type AdvisoryHandler struct {
	svc *service.AdvisoryService
}

func NewAdvisoryHandler(svc *service.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{svc: svc}
}

type composeRequest struct {
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	Mode        string                `json:"mode"`
	Algorithm   string                `json:"algorithm,omitempty"`
	Facts       []factPayload         `json:"facts,omitempty"`
	Crowding    *domain.CrowdingQuery `json:"crowding,omitempty"`
}

// Compose plans a journey, checks it against the rule catalog and
// publishes the resulting advisory.
func (h *AdvisoryHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	params := service.ComposeParams{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        domain.Mode(req.Mode),
		Algorithm:   domain.Algorithm(req.Algorithm),
		Facts:       toFacts(req.Facts),
	}
	if req.Crowding != nil {
		params.Crowding = *req.Crowding
	}

	adv, err := h.svc.Compose(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMode),
			errors.Is(err, service.ErrUnknownAlgorithm),
			errors.Is(err, logic.ErrConflictingFacts),
			errors.Is(err, bayes.ErrUnknownState),
			errors.Is(err, bayes.ErrUnknownVariable):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStationNotFound),
			errors.Is(err, service.ErrRouteNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to compose advisory")
		}
		return
	}
	writeJSON(w, http.StatusCreated, adv)
}

// GetByID returns a published advisory.
func (h *AdvisoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid advisory id")
		return
	}

	adv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "advisory not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get advisory")
		return
	}
	writeJSON(w, http.StatusOK, adv)
}

// List returns published advisories, newest first. The limit query
// parameter caps the page size.
func (h *AdvisoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	advisories, err := h.svc.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list advisories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"advisories": advisories,
		"total":      len(advisories),
	})
}
