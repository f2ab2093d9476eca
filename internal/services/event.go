package services

import (
	"context"
	"fmt"
	"time"

	"eventory/internal/domain"
)

type eventService struct {
	eventRepo       domain.EventRepository
	requireIdentity bool
	contextTimeout  time.Duration
	now             func() time.Time
}

// NewEventService returns an EventService. When requireIdentity is set,
// anonymous callers cannot create events.
func NewEventService(eventRepo domain.EventRepository, requireIdentity bool, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		requireIdentity: requireIdentity,
		contextTimeout:  timeout,
		now:             time.Now,
	}
}

// CreateEvent stores the event together with its default RSVP form. The form
// shares the event id and takes the event name as its title.
func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput, owner domain.Identity) (*domain.Event, *domain.RsvpForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if s.requireIdentity && !owner.Present() {
		return nil, nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	event := domain.NewEvent(in.Name, in.Location, in.Date, in.PublicEvent, owner, now)
	form := domain.NewRsvpForm(in.Name, now)
	if err := s.eventRepo.CreateWithForm(ctx, event, form); err != nil {
		return nil, nil, fmt.Errorf("create event: %w", err)
	}
	return event, form, nil
}

// GetEvent hides private events from everyone but their creator.
func (s *eventService) GetEvent(ctx context.Context, eventID string, caller domain.Identity) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.VisibleTo(caller) {
		return nil, domain.ErrNotFound
	}
	return event, nil
}
