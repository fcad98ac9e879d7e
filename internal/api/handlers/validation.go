package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
)

type ValidationHandler struct {
	svc *service.ValidationService
}

func NewValidationHandler(svc *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{svc: svc}
}

type factPayload struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type checkRequest struct {
	Mode  string        `json:"mode"`
	Facts []factPayload `json:"facts"`
}

type checkResponse struct {
	Verdict  *domain.Verdict      `json:"verdict"`
	Warnings []domain.RuleWarning `json:"warnings,omitempty"`
}

func toFacts(payload []factPayload) []domain.Fact {
	facts := make([]domain.Fact, 0, len(payload))
	for _, f := range payload {
		facts = append(facts, domain.Fact{Name: f.Name, Value: f.Value})
	}
	return facts
}

// Check runs a consistency check over the posted facts.
func (h *ValidationHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Facts) == 0 {
		writeError(w, http.StatusBadRequest, "at least one fact is required")
		return
	}

	verdict, warnings, err := h.svc.Check(toFacts(req.Facts), domain.Mode(req.Mode))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMode):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, logic.ErrConflictingFacts):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, logic.ErrSaturationLimit):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "consistency check failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Verdict: verdict, Warnings: warnings})
}

type entailRequest struct {
	Mode  string        `json:"mode"`
	Facts []factPayload `json:"facts"`
	Query struct {
		Name    string `json:"name"`
		Negated bool   `json:"negated"`
	} `json:"query"`
}

type entailResponse struct {
	Query    string `json:"query"`
	Entailed bool   `json:"entailed"`
}

// Entail reports whether the posted facts entail the query.
func (h *ValidationHandler) Entail(w http.ResponseWriter, r *http.Request) {
	var req entailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query.Name == "" {
		writeError(w, http.StatusBadRequest, "query name is required")
		return
	}

	query := domain.Proposition{Name: req.Query.Name, Negated: req.Query.Negated}
	entailed, err := h.svc.Entails(toFacts(req.Facts), domain.Mode(req.Mode), query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMode):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, logic.ErrConflictingFacts):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, logic.ErrSaturationLimit):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "entailment check failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, entailResponse{Query: query.String(), Entailed: entailed})
}
