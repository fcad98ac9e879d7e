package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
)

type RulesHandler struct {
	svc *service.ValidationService
}

func NewRulesHandler(svc *service.ValidationService) *RulesHandler {
	return &RulesHandler{svc: svc}
}

type ruleResponse struct {
	ID          string   `json:"id"`
	English     string   `json:"english"`
	Implication string   `json:"implication"`
	Modes       []string `json:"modes,omitempty"`
}

type rulesResponse struct {
	Rules []ruleResponse `json:"rules"`
}

func toRuleResponse(r domain.Rule) ruleResponse {
	resp := ruleResponse{
		ID:          r.ID,
		English:     r.English,
		Implication: r.Implication(),
	}
	for _, m := range r.Modes {
		resp.Modes = append(resp.Modes, string(m))
	}
	return resp
}

// List returns the rule catalog, optionally scoped to ?mode=.
func (h *RulesHandler) List(w http.ResponseWriter, r *http.Request) {
	var rules []domain.Rule
	if mode := r.URL.Query().Get("mode"); mode != "" {
		scoped, err := h.svc.RulesForMode(domain.Mode(mode))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		rules = scoped
	} else {
		rules = h.svc.Rules()
	}

	resp := rulesResponse{Rules: make([]ruleResponse, 0, len(rules))}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, toRuleResponse(rule))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RulesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.Rule(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, logic.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get rule")
		return
	}
	writeJSON(w, http.StatusOK, toRuleResponse(rule))
}
