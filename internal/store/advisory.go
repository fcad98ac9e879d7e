package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/changilink/interlock/internal/domain"
)

type AdvisoryStore struct {
	db *pgxpool.Pool
}

func NewAdvisoryStore(db *pgxpool.Pool) *AdvisoryStore {
	return &AdvisoryStore{db: db}
}

func (s *AdvisoryStore) Create(ctx context.Context, a *domain.Advisory) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO advisories (id, mode, route, verdict, warnings, crowding, facts, summary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Mode, a.Route, a.Verdict, a.Warnings, a.Crowding, a.Facts, a.Summary, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *AdvisoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Advisory, error) {
	a := &domain.Advisory{}
	err := s.db.QueryRow(ctx,
		`SELECT id, mode, route, verdict, warnings, crowding, facts, summary, created_at
		 FROM advisories WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Mode, &a.Route, &a.Verdict, &a.Warnings, &a.Crowding, &a.Facts, &a.Summary, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AdvisoryStore) List(ctx context.Context, limit int) ([]domain.Advisory, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, mode, route, verdict, warnings, crowding, facts, summary, created_at
		 FROM advisories ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Advisory
	for rows.Next() {
		var a domain.Advisory
		if err := rows.Scan(&a.ID, &a.Mode, &a.Route, &a.Verdict, &a.Warnings, &a.Crowding, &a.Facts, &a.Summary, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *AdvisoryStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM advisories WHERE created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
