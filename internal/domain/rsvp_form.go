package domain

import (
	"context"
	"time"
)

// Defaults applied to the form created alongside every event.
const (
	DefaultYourNameLabel           = "Your Name"
	DefaultYourNamePlaceholder     = "John Doe"
	DefaultEmailAddressLabel       = "Email Address"
	DefaultEmailAddressPlaceholder = "john@example.com"
	DefaultButtonLabel             = "RSVP"
	DefaultPrimaryColor            = "#7c3aed"
)

// RsvpForm is the public-facing form tied one-to-one to an Event. ID equals the event id.
// swagger:model RsvpForm
type RsvpForm struct {
	ID                      string    `json:"form_id" db:"form_id"`
	Title                   string    `json:"form_title" db:"form_title"`
	Description             string    `json:"description" db:"description"`
	YourNameLabel           string    `json:"your_name_label" db:"your_name_label"`
	YourNamePlaceholder     string    `json:"your_name_placeholder" db:"your_name_placeholder"`
	YourNameDisplay         bool      `json:"your_name_display" db:"your_name_display"`
	EmailAddressLabel       string    `json:"email_address_label" db:"email_address_label"`
	EmailAddressPlaceholder string    `json:"email_address_placeholder" db:"email_address_placeholder"`
	EmailAddressDisplay     bool      `json:"email_address_display" db:"email_address_display"`
	ButtonLabel             string    `json:"button_label" db:"button_label"`
	PrimaryColor            string    `json:"primary_color" db:"primary_color"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time `json:"updated_at" db:"updated_at"`
}

// NewRsvpForm returns the default form for an event. ID is set when the owning event is stored.
func NewRsvpForm(title string, now time.Time) *RsvpForm {
	return &RsvpForm{
		Title:                   title,
		YourNameLabel:           DefaultYourNameLabel,
		YourNamePlaceholder:     DefaultYourNamePlaceholder,
		YourNameDisplay:         true,
		EmailAddressLabel:       DefaultEmailAddressLabel,
		EmailAddressPlaceholder: DefaultEmailAddressPlaceholder,
		EmailAddressDisplay:     true,
		ButtonLabel:             DefaultButtonLabel,
		PrimaryColor:            DefaultPrimaryColor,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// RsvpFormPatch holds the fields of a form update. Nil fields are left unchanged.
type RsvpFormPatch struct {
	Title                   *string
	Description             *string
	YourNameLabel           *string
	YourNamePlaceholder     *string
	YourNameDisplay         *bool
	EmailAddressLabel       *string
	EmailAddressPlaceholder *string
	EmailAddressDisplay     *bool
	ButtonLabel             *string
	PrimaryColor            *string
}

// IsEmpty reports whether the patch changes nothing.
func (p RsvpFormPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil &&
		p.YourNameLabel == nil && p.YourNamePlaceholder == nil && p.YourNameDisplay == nil &&
		p.EmailAddressLabel == nil && p.EmailAddressPlaceholder == nil && p.EmailAddressDisplay == nil &&
		p.ButtonLabel == nil && p.PrimaryColor == nil
}

// Apply copies the set fields of p onto f and bumps UpdatedAt.
func (f *RsvpForm) Apply(p RsvpFormPatch, now time.Time) {
	setString(&f.Title, p.Title)
	setString(&f.Description, p.Description)
	setString(&f.YourNameLabel, p.YourNameLabel)
	setString(&f.YourNamePlaceholder, p.YourNamePlaceholder)
	setBool(&f.YourNameDisplay, p.YourNameDisplay)
	setString(&f.EmailAddressLabel, p.EmailAddressLabel)
	setString(&f.EmailAddressPlaceholder, p.EmailAddressPlaceholder)
	setBool(&f.EmailAddressDisplay, p.EmailAddressDisplay)
	setString(&f.ButtonLabel, p.ButtonLabel)
	setString(&f.PrimaryColor, p.PrimaryColor)
	f.UpdatedAt = now
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// RsvpFormRepository defines the interface for RSVP form storage.
// Forms are created only through EventRepository.CreateWithForm.
type RsvpFormRepository interface {
	GetByID(ctx context.Context, formID string) (*RsvpForm, error)
	// Update applies patch and returns the stored form. Returns ErrNotFound if no form has formID.
	Update(ctx context.Context, formID string, patch RsvpFormPatch) (*RsvpForm, error)
}

// FormService defines the business logic for RSVP forms.
type FormService interface {
	GetForm(ctx context.Context, formID string) (*RsvpForm, error)
	UpdateForm(ctx context.Context, formID string, patch RsvpFormPatch, caller Identity) (*RsvpForm, error)
}
