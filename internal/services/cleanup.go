package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gatherbot/internal/domain"
)

// retentionDays is how long an event stays queryable after its date has passed.
const retentionDays = 10

type cleanupService struct {
	eventRepo domain.EventRepository
	logger    *slog.Logger
}

// NewCleanupService creates the CleanupService that purges stale events.
func NewCleanupService(eventRepo domain.EventRepository, logger *slog.Logger) domain.CleanupService {
	return &cleanupService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Run deletes events dated strictly before now minus the retention window.
// RSVP rows go with their event via the store's cascade.
func (s *cleanupService) Run(ctx context.Context, now time.Time) (int64, error) {
	cutoff := truncateToDay(now).AddDate(0, 0, -retentionDays)
	removed, err := s.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete events older than %s: %w", cutoff.Format(domain.DateLayout), err)
	}
	if removed > 0 {
		s.logger.Info("purged stale events", "removed", removed, "cutoff", cutoff.Format(domain.DateLayout))
	}
	return removed, nil
}
