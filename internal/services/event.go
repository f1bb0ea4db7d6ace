package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gatherbot/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	rsvpRepo       domain.RSVPRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, rsvpRepo domain.RSVPRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		rsvpRepo:       rsvpRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, name, date, eventTime, description string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	event := domain.NewEvent(name, day, strings.TrimSpace(eventTime), description, time.Now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, month string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if strings.TrimSpace(month) == "" {
		return events, nil
	}

	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	// Month filtering is year-agnostic: "March" matches March of every year.
	filtered := make([]*domain.Event, 0)
	for _, e := range events {
		if e.Date.Month() == m {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// parseMonth accepts an English month name (any case) or a number 1-12.
func parseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), nil
		}
		return 0, domain.ErrUnknownMonth
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, domain.ErrUnknownMonth
}

func (s *eventService) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	rows, err := s.eventRepo.Delete(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if rows == 0 {
		// Deleted between lookup and delete.
		return domain.ErrNotFound
	}
	return nil
}

func (s *eventService) RSVP(ctx context.Context, eventName, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}

	// The store's unique constraint is the idempotence guard; no pre-check.
	if err := s.rsvpRepo.Add(ctx, event.ID, userID); err != nil {
		if errors.Is(err, domain.ErrAlreadyRSVPed) {
			return false, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("add rsvp: %w", err)
	}
	return true, nil
}

func (s *eventService) RSVPCount(ctx context.Context, eventName string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get event: %w", err)
	}
	count, err := s.rsvpRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}
	return count, nil
}

func (s *eventService) AttendeeIDs(ctx context.Context, eventName string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	ids, err := s.rsvpRepo.ListUserIDsByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list rsvp user ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
