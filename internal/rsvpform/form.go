// Package rsvpform drives a guest's RSVP submission: which fields to show,
// local validation, and the Idle, Pending, Succeeded and Failed phases.
package rsvpform

import (
	"context"
	"errors"
	"sync"

	"eventory/internal/domain"
	"eventory/internal/schema"
)

var (
	ErrInFlight         = errors.New("rsvp submission already in flight")
	ErrAlreadySubmitted = errors.New("rsvp already submitted")
)

// Submitter sends a locally valid RSVP and returns the stored response id.
type Submitter interface {
	SubmitRsvp(ctx context.Context, in domain.SubmitRsvpInput) (string, error)
}

// Values are the raw inputs a guest typed.
type Values struct {
	Name      string
	Email     string
	Attending string
}

// Field describes one text input of the form.
type Field struct {
	Name        string
	Type        string
	Label       string
	Placeholder string
	Issue       string
}

// Option is one choice of the attending select.
type Option struct {
	Value string
	Label string
}

// Form is one guest's RSVP form. It is safe for concurrent use; at most one
// submission is in flight at a time.
type Form struct {
	mu        sync.Mutex
	form      *domain.RsvpForm
	submitter Submitter
	state     State
}

func New(form *domain.RsvpForm, submitter Submitter) *Form {
	return &Form{form: form, submitter: submitter}
}

// Definition returns the form configuration the Form renders.
func (f *Form) Definition() *domain.RsvpForm {
	return f.form
}

// State returns the current snapshot.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the text inputs to render, in order. Name and email are
// omitted when the form hides them.
func (f *Form) Fields() []Field {
	state := f.State()
	var fields []Field
	if f.form.YourNameDisplay {
		fields = append(fields, Field{
			Name:        schema.FieldName,
			Type:        "text",
			Label:       f.form.YourNameLabel,
			Placeholder: f.form.YourNamePlaceholder,
			Issue:       state.IssueFor(schema.FieldName),
		})
	}
	if f.form.EmailAddressDisplay {
		fields = append(fields, Field{
			Name:        schema.FieldEmail,
			Type:        "email",
			Label:       f.form.EmailAddressLabel,
			Placeholder: f.form.EmailAddressPlaceholder,
			Issue:       state.IssueFor(schema.FieldEmail),
		})
	}
	return fields
}

// Options returns the attending choices.
func Options() []Option {
	opts := make([]Option, len(domain.Attendances))
	for i, a := range domain.Attendances {
		opts[i] = Option{Value: string(a), Label: a.Label()}
	}
	return opts
}

// Submit validates v locally and, when valid, sends it once. Invalid input
// leaves the form Idle with issues and returns the *schema.ValidationError
// without calling the Submitter. A submit while one is pending returns
// ErrInFlight; a submit after success returns ErrAlreadySubmitted.
func (f *Form) Submit(ctx context.Context, v Values) (State, error) {
	f.mu.Lock()
	switch f.state.Kind {
	case Pending:
		f.mu.Unlock()
		return f.State(), ErrInFlight
	case Succeeded:
		f.mu.Unlock()
		return f.State(), ErrAlreadySubmitted
	}

	acc := schema.RsvpAcceptance{
		Name:      v.Name,
		Email:     v.Email,
		Attending: v.Attending,
		EventID:   f.form.ID,
	}.Normalized().ForForm(f.form)
	if err := acc.ValidateFor(f.form); err != nil {
		verr, ok := schema.AsValidationError(err)
		if !ok {
			f.state = State{Kind: Failed, Alert: AlertMessage, Err: err}
			state := f.state
			f.mu.Unlock()
			return state, err
		}
		f.state = State{Kind: Idle, Issues: verr.Issues}
		state := f.state
		f.mu.Unlock()
		return state, verr
	}
	f.state = State{Kind: Pending}
	f.mu.Unlock()

	id, err := f.submitter.SubmitRsvp(ctx, acc.Input())

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = State{Kind: Failed, Alert: AlertMessage, Err: err}
		return f.state, err
	}
	f.state = State{Kind: Succeeded, ResponseID: id}
	return f.state, nil
}
