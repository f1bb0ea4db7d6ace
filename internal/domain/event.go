package domain

import (
	"context"
	"errors"
	"time"
)

// DateLayout is the calendar date format accepted everywhere (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var (
	// ErrNotFound is returned when an event does not exist.
	ErrNotFound = errors.New("event not found")

	// ErrInvalidDate is returned when a date string does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrEmptyName is returned when an event name is empty after trimming.
	ErrEmptyName = errors.New("event name must not be empty")

	// ErrUnknownMonth is returned when a month filter is neither a month name nor 1-12.
	ErrUnknownMonth = errors.New("unknown month")
)

// Event is a scheduled community occurrence users can RSVP to.
// Name is the human-facing lookup key; duplicates are not rejected by
// the store, lookups resolve to the oldest match.
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	EventTime   string    `json:"event_time,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name string, date time.Time, eventTime, description string, createdAt time.Time) *Event {
	return &Event{
		Name:        name,
		Date:        date,
		EventTime:   eventTime,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// List returns all events ordered by date ascending. Empty slice when none exist.
	List(ctx context.Context) ([]*Event, error)
	// GetByName resolves an event by exact, case-sensitive name. Duplicate
	// names resolve to the event with the lowest id.
	GetByName(ctx context.Context, name string) (*Event, error)
	// Delete removes the event and, by cascade, its RSVPs. Returns the number
	// of event rows removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
	// DeleteOlderThan removes every event dated strictly before cutoff,
	// cascading RSVPs, and returns the number of events removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventService defines the command-facing event operations.
type EventService interface {
	// Create validates name and date and stores a new event. eventTime is
	// optional free-form text.
	Create(ctx context.Context, name, date, eventTime, description string) (*Event, error)
	// List returns events ordered by date. When month is non-empty it keeps
	// only events whose date falls in that month of any year.
	List(ctx context.Context, month string) ([]*Event, error)
	Delete(ctx context.Context, name string) error
	// RSVP records the user's intention to attend. created is false when the
	// user had already RSVP'd; re-RSVP is never an error.
	RSVP(ctx context.Context, eventName, userID string) (created bool, err error)
	RSVPCount(ctx context.Context, eventName string) (int, error)
	AttendeeIDs(ctx context.Context, eventName string) ([]string, error)
}
