package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AdvisoryStore handles persistence of published advisories.
type AdvisoryStore interface {
	Create(ctx context.Context, a *Advisory) error
	GetByID(ctx context.Context, id uuid.UUID) (*Advisory, error)
	List(ctx context.Context, limit int) ([]Advisory, error)

	// Retention
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
