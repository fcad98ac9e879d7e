package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/changilink/interlock/internal/service"
)

type ScenarioHandler struct {
	svc *service.ScenarioService
}

func NewScenarioHandler(svc *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{svc: svc}
}

// List returns the embedded scenario catalog.
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": h.svc.Scenarios()})
}

// Run checks a single scenario.
func (h *ScenarioHandler) Run(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Run(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrScenarioNotFound) {
			writeError(w, http.StatusNotFound, "scenario not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "scenario run failed")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// RunAll checks the whole catalog.
func (h *ScenarioHandler) RunAll(w http.ResponseWriter, r *http.Request) {
	runs, err := h.svc.RunAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "scenario sweep failed")
		return
	}

	matched := 0
	for _, run := range runs {
		if run.Matches {
			matched++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"runs":    runs,
		"total":   len(runs),
		"matched": matched,
	})
}
