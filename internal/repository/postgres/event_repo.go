package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"eventory/internal/domain"
)

type eventRepository struct {
	DB *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// CreateWithForm inserts the event and its form in one transaction.
func (r *eventRepository) CreateWithForm(ctx context.Context, e *domain.Event, f *domain.RsvpForm) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			e.ID = ""
			f.ID = ""
		}
	}()

	eventQuery := `
		INSERT INTO events (event_name, event_date, location, creator_id, public_event, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING event_id
	`
	if err = tx.QueryRowxContext(ctx, eventQuery, e.Name, e.Date, e.Location, e.CreatorID, e.PublicEvent, e.CreatedAt).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	f.ID = e.ID
	formQuery := `
		INSERT INTO rsvp_forms (form_id, form_title, description, your_name_label, your_name_placeholder, your_name_display,
			email_address_label, email_address_placeholder, email_address_display, button_label, primary_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	if _, err = tx.ExecContext(ctx, formQuery,
		f.ID, f.Title, f.Description, f.YourNameLabel, f.YourNamePlaceholder, f.YourNameDisplay,
		f.EmailAddressLabel, f.EmailAddressPlaceholder, f.EmailAddressDisplay, f.ButtonLabel, f.PrimaryColor,
		f.CreatedAt, f.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert rsvp form: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT event_id, event_name, event_date, location, creator_id, public_event, created_at
		FROM events
		WHERE event_id = $1
	`
	e := &domain.Event{}
	if err := r.DB.GetContext(ctx, e, query, id); err != nil {
		// Non-UUID ids cannot match any row.
		if errors.Is(err, sql.ErrNoRows) || isPgError(err, pgErrInvalidTextRep) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
