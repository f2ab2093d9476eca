package schema

import (
	"strings"

	"eventory/internal/domain"
)

// RSVP field keys, as they appear in payloads and issue paths.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldAttending = "attending"
	FieldEventID   = "event_id"
)

// RsvpAcceptance is a guest's RSVP submission.
type RsvpAcceptance struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Attending string `json:"attending" validate:"required,attendance"`
	EventID   string `json:"event_id" validate:"required"`
}

func (RsvpAcceptance) messages() map[string]string {
	return map[string]string{
		"name.required":      "Enter your name",
		"email.required":     "Enter your email address",
		"email.email":        "Enter a valid email address",
		"attending.required": "Select your rsvp status",
	}
}

// Normalized returns r with surrounding whitespace removed from free-text fields.
func (r RsvpAcceptance) Normalized() RsvpAcceptance {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.EventID = strings.TrimSpace(r.EventID)
	return r
}

// Validate checks every field regardless of form configuration.
func (r RsvpAcceptance) Validate() error {
	return Validate(r)
}

// ForForm clears the fields the form does not display, since guests never see them.
func (r RsvpAcceptance) ForForm(form *domain.RsvpForm) RsvpAcceptance {
	if !form.YourNameDisplay {
		r.Name = ""
	}
	if !form.EmailAddressDisplay {
		r.Email = ""
	}
	return r
}

// ValidateFor checks r against the rules that apply to form: hidden fields are not required.
func (r RsvpAcceptance) ValidateFor(form *domain.RsvpForm) error {
	err := r.Validate()
	verr, ok := AsValidationError(err)
	if !ok {
		return err
	}
	var hidden []string
	if !form.YourNameDisplay {
		hidden = append(hidden, FieldName)
	}
	if !form.EmailAddressDisplay {
		hidden = append(hidden, FieldEmail)
	}
	if rest := verr.Without(hidden...); rest != nil {
		return rest
	}
	return nil
}

// Input converts r to the service input.
func (r RsvpAcceptance) Input() domain.SubmitRsvpInput {
	return domain.SubmitRsvpInput{
		EventID:   r.EventID,
		Name:      r.Name,
		Email:     r.Email,
		Attending: r.Attending,
	}
}

// FromInput rebuilds the schema value from a service input.
func FromInput(in domain.SubmitRsvpInput) RsvpAcceptance {
	return RsvpAcceptance{
		Name:      in.Name,
		Email:     in.Email,
		Attending: in.Attending,
		EventID:   in.EventID,
	}
}

// DecodeRsvpAcceptance decodes an RSVP payload without applying the rules, which
// depend on the form being answered. Unknown keys are rejected.
func DecodeRsvpAcceptance(data []byte) (RsvpAcceptance, error) {
	var r RsvpAcceptance
	if err := Decode(data, &r, true); err != nil {
		return RsvpAcceptance{}, err
	}
	return r, nil
}
