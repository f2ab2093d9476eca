package domain

import (
	"context"
	"time"
)

// Event represents an organizer-created gathering.
// swagger:model Event
type Event struct {
	ID          string     `json:"event_id" db:"event_id"`
	Name        string     `json:"event_name" db:"event_name"`
	Date        *time.Time `json:"event_date" db:"event_date"`
	Location    string     `json:"location" db:"location"`
	CreatorID   string     `json:"creator_id" db:"creator_id"`
	PublicEvent bool       `json:"public_event" db:"public_event"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// NewEvent returns a new Event owned by owner. ID is set by the repository on create.
func NewEvent(name, location string, date *time.Time, publicEvent bool, owner Identity, createdAt time.Time) *Event {
	return &Event{
		Name:        name,
		Date:        date,
		Location:    location,
		CreatorID:   owner.OwnerID(),
		PublicEvent: publicEvent,
		CreatedAt:   createdAt,
	}
}

// OwnedBy reports whether the event has a creator and caller is that creator.
func (e *Event) OwnedBy(caller Identity) bool {
	id, ok := caller.UserID()
	return ok && e.CreatorID != "" && e.CreatorID == id
}

// EditableBy reports whether caller may change the event's form.
// Events created anonymously stay editable by anyone holding the form id.
func (e *Event) EditableBy(caller Identity) bool {
	return e.CreatorID == "" || e.OwnedBy(caller)
}

// VisibleTo reports whether caller may read the event record.
func (e *Event) VisibleTo(caller Identity) bool {
	return e.PublicEvent || e.OwnedBy(caller)
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// CreateWithForm stores the event and its companion form as one atomic unit.
	// On success event.ID is set and form.ID equals it; on failure neither row exists.
	CreateWithForm(ctx context.Context, event *Event, form *RsvpForm) error
	GetByID(ctx context.Context, id string) (*Event, error)
}

// CreateEventInput carries the validated fields of a create-event request.
type CreateEventInput struct {
	Name        string
	Location    string
	Date        *time.Time
	PublicEvent bool
}

// EventService defines the business logic for events.
type EventService interface {
	// CreateEvent creates the event and its default RSVP form for owner.
	CreateEvent(ctx context.Context, in CreateEventInput, owner Identity) (*Event, *RsvpForm, error)
	// GetEvent returns the event if it is visible to caller; hidden events are reported as ErrNotFound.
	GetEvent(ctx context.Context, eventID string, caller Identity) (*Event, error)
}
