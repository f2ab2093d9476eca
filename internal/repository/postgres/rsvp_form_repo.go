package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"eventory/internal/domain"
)

const rsvpFormColumns = `form_id, form_title, description, your_name_label, your_name_placeholder, your_name_display,
	email_address_label, email_address_placeholder, email_address_display, button_label, primary_color, created_at, updated_at`

type rsvpFormRepository struct {
	DB *sqlx.DB
}

func NewRsvpFormRepository(db *sqlx.DB) domain.RsvpFormRepository {
	return &rsvpFormRepository{
		DB: db,
	}
}

func (r *rsvpFormRepository) GetByID(ctx context.Context, formID string) (*domain.RsvpForm, error) {
	query := `SELECT ` + rsvpFormColumns + ` FROM rsvp_forms WHERE form_id = $1`
	f := &domain.RsvpForm{}
	if err := r.DB.GetContext(ctx, f, query, formID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isPgError(err, pgErrInvalidTextRep) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *rsvpFormRepository) Update(ctx context.Context, formID string, p domain.RsvpFormPatch) (*domain.RsvpForm, error) {
	if p.IsEmpty() {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, formID)
	}
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.Title != nil {
		add("form_title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.YourNameLabel != nil {
		add("your_name_label", *p.YourNameLabel)
	}
	if p.YourNamePlaceholder != nil {
		add("your_name_placeholder", *p.YourNamePlaceholder)
	}
	if p.YourNameDisplay != nil {
		add("your_name_display", *p.YourNameDisplay)
	}
	if p.EmailAddressLabel != nil {
		add("email_address_label", *p.EmailAddressLabel)
	}
	if p.EmailAddressPlaceholder != nil {
		add("email_address_placeholder", *p.EmailAddressPlaceholder)
	}
	if p.EmailAddressDisplay != nil {
		add("email_address_display", *p.EmailAddressDisplay)
	}
	if p.ButtonLabel != nil {
		add("button_label", *p.ButtonLabel)
	}
	if p.PrimaryColor != nil {
		add("primary_color", *p.PrimaryColor)
	}
	args = append(args, formID)
	query := fmt.Sprintf(`
		UPDATE rsvp_forms SET %s
		WHERE form_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), rsvpFormColumns)

	f := &domain.RsvpForm{}
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(f); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isPgError(err, pgErrInvalidTextRep) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
