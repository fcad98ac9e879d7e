package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/changilink/interlock/internal/domain"
)

const (
	defaultRetentionInterval = 1 * time.Hour
	defaultRetentionMaxAge   = 30 * 24 * time.Hour
)

// RetentionService prunes published advisories past their retention
// age on a periodic schedule.
type RetentionService struct {
	advisories domain.AdvisoryStore
	logger     *zap.Logger

	maxAge   time.Duration
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewRetentionService(advisories domain.AdvisoryStore, logger *zap.Logger) *RetentionService {
	return &RetentionService{
		advisories: advisories,
		logger:     logger,
		maxAge:     defaultRetentionMaxAge,
		interval:   defaultRetentionInterval,
		stopCh:     make(chan struct{}),
	}
}

func (s *RetentionService) SetMaxAge(d time.Duration) {
	s.maxAge = d
}

func (s *RetentionService) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the retention sweep on a periodic schedule in a
// background goroutine.
func (s *RetentionService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("advisory retention started",
			zap.Duration("interval", s.interval),
			zap.Duration("max_age", s.maxAge))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.run(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("advisory retention stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the retention sweep.
func (s *RetentionService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *RetentionService) run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.maxAge)
	deleted, err := s.advisories.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to delete expired advisories", zap.Error(err))
		return
	}
	if deleted > 0 {
		s.logger.Info("deleted expired advisories",
			zap.Time("cutoff", cutoff),
			zap.Int64("count", deleted))
	}
}
