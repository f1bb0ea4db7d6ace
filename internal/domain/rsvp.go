package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyRSVPed is returned by the repository when the (event, user) pair
// already has a stored RSVP. The unique constraint in storage is the source of
// truth; callers never pre-check.
var ErrAlreadyRSVPed = errors.New("already RSVP'd")

// RSVP records one user's intention to attend one event. At most one row may
// exist per (event, user) pair.
type RSVP struct {
	EventID   int64     `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RSVPRepository defines storage operations for RSVPs. Rows are only ever
// removed by the owning event's cascade delete.
type RSVPRepository interface {
	// Add inserts the RSVP. Returns ErrAlreadyRSVPed when the pair exists and
	// ErrNotFound when the event was deleted concurrently.
	Add(ctx context.Context, eventID int64, userID string) error
	CountByEventID(ctx context.Context, eventID int64) (int, error)
	ListUserIDsByEventID(ctx context.Context, eventID int64) ([]string, error)
}
