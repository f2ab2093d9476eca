package domain

import (
	"context"
	"time"
)

// Attendance is a guest's answer to an RSVP form.
type Attendance string

// Attendance values accepted by the RSVP form.
const (
	AttendanceGoing    Attendance = "going"
	AttendanceNotSure  Attendance = "not_sure"
	AttendanceNotGoing Attendance = "not_going"
)

// Attendances lists the accepted attendance values in display order.
var Attendances = []Attendance{AttendanceGoing, AttendanceNotSure, AttendanceNotGoing}

// Valid reports whether a is one of the accepted values.
func (a Attendance) Valid() bool {
	switch a {
	case AttendanceGoing, AttendanceNotSure, AttendanceNotGoing:
		return true
	}
	return false
}

// Label is the text shown to guests for a.
func (a Attendance) Label() string {
	switch a {
	case AttendanceGoing:
		return "Attending"
	case AttendanceNotSure:
		return "Probably"
	case AttendanceNotGoing:
		return "Not Attending"
	}
	return string(a)
}

// RsvpResponse is a guest's submitted attendance answer for an event.
// swagger:model RsvpResponse
type RsvpResponse struct {
	ID        string     `json:"response_id" db:"response_id"`
	EventID   string     `json:"event_id" db:"event_id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Attending Attendance `json:"attending" db:"attending"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NewRsvpResponse returns a new RsvpResponse. ID is set by the repository on create.
func NewRsvpResponse(eventID, name, email string, attending Attendance, createdAt time.Time) *RsvpResponse {
	return &RsvpResponse{
		EventID:   eventID,
		Name:      name,
		Email:     email,
		Attending: attending,
		CreatedAt: createdAt,
	}
}

// RsvpResponseRepository defines storage operations for RSVP responses.
type RsvpResponseRepository interface {
	Create(ctx context.Context, resp *RsvpResponse) error
	// ListByEventID returns one page of responses, newest first, and the total count.
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*RsvpResponse, int, error)
}

// SubmitRsvpInput carries a guest submission as received from the form.
type SubmitRsvpInput struct {
	EventID   string
	Name      string
	Email     string
	Attending string
}

// RsvpService defines guest-facing RSVP operations and the organizer's view of them.
type RsvpService interface {
	// Submit validates the input against the event's form and stores the response.
	Submit(ctx context.Context, in SubmitRsvpInput) (*RsvpResponse, error)
	ListResponses(ctx context.Context, eventID string, caller Identity, params PaginationParams) ([]*RsvpResponse, int, error)
}
