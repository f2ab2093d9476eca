package postgres

import (
	"context"
	"database/sql"
	"testing"

	"eventory/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRsvpResponseRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rsvp_responses \(event_id, name, email, attending, created_at\)`).
					WithArgs("ev-1", "Ada", "ada@example.com", "going", testTime).
					WillReturnRows(sqlmock.NewRows([]string{"response_id"}).AddRow("resp-1"))
			},
			wantID: "resp-1",
		},
		{
			name: "unknown event",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rsvp_responses`).
					WillReturnError(&pq.Error{Code: pgErrForeignKeyViolation})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rsvp_responses`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			resp := domain.NewRsvpResponse("ev-1", "Ada", "ada@example.com", domain.AttendanceGoing, testTime)
			err := NewRsvpResponseRepository(db).Create(ctx, resp)
			require.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, resp.ID)
		})
	}
}

func TestRsvpResponseRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rsvp_responses WHERE event_id = \$1`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT response_id, event_id, name, email, attending, created_at`).
		WithArgs("ev-1", 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"response_id", "event_id", "name", "email", "attending", "created_at"}).
			AddRow("resp-1", "ev-1", "Ada", "ada@example.com", "not_sure", testTime))

	got, total, err := NewRsvpResponseRepository(db).ListByEventID(ctx, "ev-1", domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 3, total)
	require.Len(t, got, 1)
	assert.Equal(t, domain.AttendanceNotSure, got[0].Attending)
	assert.Equal(t, "Ada", got[0].Name)
}
