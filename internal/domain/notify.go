package domain

import (
	"context"
	"time"
)

// Digest is the result of one reminder scan: the events whose date falls
// inside [From, To] inclusive. A digest with no events is still delivered.
type Digest struct {
	From   time.Time
	To     time.Time
	Events []*Event
}

// Empty reports whether the digest holds no upcoming events.
func (d *Digest) Empty() bool {
	return len(d.Events) == 0
}

// Notifier delivers a reminder digest to one destination (a chat channel, an
// email recipient). Implementations own their formatting.
type Notifier interface {
	NotifyDigest(ctx context.Context, d *Digest) error
}

// ReminderService computes and delivers the periodic upcoming-events digest.
type ReminderService interface {
	// Upcoming returns the digest for the lookahead window starting at now's date.
	Upcoming(ctx context.Context, now time.Time) (*Digest, error)
	// Run builds the digest and fans it out to every configured notifier.
	Run(ctx context.Context, now time.Time) error
}

// CleanupService purges events past the retention window.
type CleanupService interface {
	// Run deletes events dated strictly before now's date minus the retention
	// window and returns how many were removed.
	Run(ctx context.Context, now time.Time) (int64, error)
}
