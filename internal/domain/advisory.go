package domain

import (
	"time"

	"github.com/google/uuid"
)

// Advisory is a published travel advisory: a planned route checked for
// rule consistency, with a crowding forecast and human-readable summary
// lines. Advisories are persisted so operators can review what the
// system told travellers.
type Advisory struct {
	ID        uuid.UUID         `json:"id"`
	Mode      Mode              `json:"mode"`
	Route     *RoutePlan        `json:"route,omitempty"`
	Verdict   *Verdict          `json:"verdict"`
	Warnings  []RuleWarning     `json:"warnings,omitempty"`
	Crowding  *CrowdingForecast `json:"crowding,omitempty"`
	Facts     []Fact            `json:"facts"`
	Summary   []string          `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
}
