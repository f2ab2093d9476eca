package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"eventory/internal/domain"
)

type rsvpResponseRepository struct {
	DB *sqlx.DB
}

func NewRsvpResponseRepository(db *sqlx.DB) domain.RsvpResponseRepository {
	return &rsvpResponseRepository{
		DB: db,
	}
}

func (r *rsvpResponseRepository) Create(ctx context.Context, resp *domain.RsvpResponse) error {
	query := `
		INSERT INTO rsvp_responses (event_id, name, email, attending, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING response_id
	`
	err := r.DB.QueryRowxContext(ctx, query, resp.EventID, resp.Name, resp.Email, string(resp.Attending), resp.CreatedAt).Scan(&resp.ID)
	if isPgError(err, pgErrForeignKeyViolation, pgErrInvalidTextRep) {
		return domain.ErrNotFound
	}
	return err
}

func (r *rsvpResponseRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.RsvpResponse, int, error) {
	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rsvp_responses WHERE event_id = $1`, eventID); err != nil {
		if isPgError(err, pgErrInvalidTextRep) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("count responses: %w", err)
	}
	query := `
		SELECT response_id, event_id, name, email, attending, created_at
		FROM rsvp_responses
		WHERE event_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	responses := make([]*domain.RsvpResponse, 0)
	if err := r.DB.SelectContext(ctx, &responses, query, eventID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, fmt.Errorf("list responses: %w", err)
	}
	return responses, total, nil
}
