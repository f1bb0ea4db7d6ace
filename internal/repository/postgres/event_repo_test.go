package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gatherbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Name:        "Game Night",
				Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				EventTime:   "18:30",
				Description: "board games",
				CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(name, date, event_time, description, created_at\)`).
					WithArgs("Game Night", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), sql.NullString{String: "18:30", Valid: true}, "board games", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID:  7,
			wantErr: false,
		},
		{
			name: "no event time stores null",
			event: &domain.Event{
				Name:      "Picnic",
				Date:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
				CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("Picnic", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), sql.NullString{}, "", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
			},
			wantID:  8,
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.Event{
				Name: "Broken",
				Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by date", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT id, name, date, event_time, description, created_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "event_time", "description", "created_at"}).
				AddRow(int64(1), "First", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil, "", created).
				AddRow(int64(2), "Second", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "19:00", "dinner", created))

		repo := NewEventRepository(db)
		events, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, "First", events[0].Name)
		require.Equal(t, "", events[0].EventTime)
		require.Equal(t, "19:00", events[1].EventTime)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, date, event_time, description, created_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "event_time", "description", "created_at"}))

		repo := NewEventRepository(db)
		events, err := repo.List(ctx)
		require.NoError(t, err)
		require.Empty(t, events)
		require.NotNil(t, events)
	})
}

func TestEventRepository_GetByName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		eventName string
		mock      func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   error
	}{
		{
			name:      "found",
			eventName: "Game Night",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, date, event_time, description, created_at`).
					WithArgs("Game Night").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "event_time", "description", "created_at"}).
						AddRow(int64(3), "Game Night", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), nil, "board games", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
			},
			wantID: 3,
		},
		{
			name:      "not found",
			eventName: "Missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, date, event_time, description, created_at`).
					WithArgs("Missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			event, err := repo.GetByName(ctx, tt.eventName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes one row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		rows, err := repo.Delete(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)
	})

	t.Run("missing event removes zero rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		rows, err := repo.Delete(ctx, 99)
		require.NoError(t, err)
		require.Zero(t, rows)
	})
}

func TestEventRepository_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM events WHERE date < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewEventRepository(db)
	removed, err := repo.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
