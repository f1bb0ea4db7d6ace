package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"gatherbot/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

// Add relies on the (event_id, user_id) unique constraint for idempotence and
// on the foreign key for orphan prevention, so concurrent identical calls and
// a concurrent event delete both resolve inside the database.
func (r *rsvpRepository) Add(ctx context.Context, eventID int64, userID string) error {
	query := `
		INSERT INTO rsvps (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, userID, time.Now())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return domain.ErrAlreadyRSVPed
			case "23503": // foreign_key_violation: event deleted under us
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *rsvpRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	query := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rsvpRepository) ListUserIDsByEventID(ctx context.Context, eventID int64) ([]string, error) {
	query := `
		SELECT user_id
		FROM rsvps
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
