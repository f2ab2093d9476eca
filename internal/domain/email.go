package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RsvpConfirmationEmailData holds data for the guest confirmation email.
type RsvpConfirmationEmailData struct {
	Email     string
	Name      string
	EventName string
	EventDate string // preformatted, empty when the event has no date
	Location  string
	Attending string // display label
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRsvpConfirmation(ctx context.Context, data *RsvpConfirmationEmailData) error
}
