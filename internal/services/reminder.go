package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gatherbot/internal/domain"
)

// lookaheadDays is how far ahead the reminder digest looks, inclusive.
const lookaheadDays = 14

type reminderService struct {
	eventRepo domain.EventRepository
	notifiers []domain.Notifier
	logger    *slog.Logger
}

// NewReminderService creates a ReminderService that fans the digest out to the
// given notifiers. An empty notifier list is allowed; runs then only log.
func NewReminderService(eventRepo domain.EventRepository, notifiers []domain.Notifier, logger *slog.Logger) domain.ReminderService {
	return &reminderService{
		eventRepo: eventRepo,
		notifiers: notifiers,
		logger:    logger,
	}
}

func (s *reminderService) Upcoming(ctx context.Context, now time.Time) (*domain.Digest, error) {
	from := truncateToDay(now)
	to := from.AddDate(0, 0, lookaheadDays)

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	upcoming := make([]*domain.Event, 0)
	for _, e := range events {
		day := truncateToDay(e.Date)
		if !day.Before(from) && !day.After(to) {
			upcoming = append(upcoming, e)
		}
	}
	return &domain.Digest{From: from, To: to, Events: upcoming}, nil
}

// Run builds the digest for now and delivers it to every notifier. The digest
// is always sent, even when no events qualify. A failing notifier is logged
// and skipped; only a store failure aborts the run.
func (s *reminderService) Run(ctx context.Context, now time.Time) error {
	digest, err := s.Upcoming(ctx, now)
	if err != nil {
		return err
	}

	if len(s.notifiers) == 0 {
		s.logger.Warn("reminder digest built but no notifier configured",
			"events", len(digest.Events))
		return nil
	}
	for _, n := range s.notifiers {
		if err := n.NotifyDigest(ctx, digest); err != nil {
			s.logger.Error("deliver reminder digest", "error", err)
			continue
		}
	}
	s.logger.Info("reminder digest delivered",
		"events", len(digest.Events),
		"from", digest.From.Format(domain.DateLayout),
		"to", digest.To.Format(domain.DateLayout))
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
