package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gatherbot/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date, event_time, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var timeNull sql.NullString
	if e.EventTime != "" {
		timeNull = sql.NullString{String: e.EventTime, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Date, timeNull, e.Description, e.CreatedAt).Scan(&e.ID)
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, date, event_time, description, created_at
		FROM events
		ORDER BY date ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var timeNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &timeNull, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.EventTime = timeNull.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	// Name is not unique; the oldest event wins, matching lookup-by-name semantics.
	query := `
		SELECT id, name, date, event_time, description, created_at
		FROM events
		WHERE name = $1
		ORDER BY id ASC
		LIMIT 1
	`
	e := &domain.Event{}
	var timeNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&e.ID, &e.Name, &e.Date, &timeNull, &e.Description, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.EventTime = timeNull.String
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}

func (r *eventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM events WHERE date < $1`
	result, err := r.DB.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
