// Package memory keeps events, forms and responses in process memory.
// It backs local development and tests; data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventory/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	events    map[string]domain.Event
	forms     map[string]domain.RsvpForm
	responses map[string][]domain.RsvpResponse
	now       func() time.Time
}

func New() *Store {
	return &Store{
		events:    make(map[string]domain.Event),
		forms:     make(map[string]domain.RsvpForm),
		responses: make(map[string][]domain.RsvpResponse),
		now:       time.Now,
	}
}

func (s *Store) Events() domain.EventRepository {
	return &eventRepository{store: s}
}

func (s *Store) Forms() domain.RsvpFormRepository {
	return &rsvpFormRepository{store: s}
}

func (s *Store) Responses() domain.RsvpResponseRepository {
	return &rsvpResponseRepository{store: s}
}

type eventRepository struct {
	store *Store
}

// CreateWithForm stores the event and its form under one lock, so readers
// never observe one without the other.
func (r *eventRepository) CreateWithForm(_ context.Context, event *domain.Event, form *domain.RsvpForm) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	event.ID = id
	form.ID = id
	s.events[id] = *event
	s.forms[id] = *form
	return nil
}

func (r *eventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

type rsvpFormRepository struct {
	store *Store
}

func (r *rsvpFormRepository) GetByID(_ context.Context, formID string) (*domain.RsvpForm, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.forms[formID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (r *rsvpFormRepository) Update(_ context.Context, formID string, patch domain.RsvpFormPatch) (*domain.RsvpForm, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.forms[formID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.IsEmpty() {
		return &f, nil
	}
	f.Apply(patch, s.now().UTC())
	s.forms[formID] = f
	return &f, nil
}

type rsvpResponseRepository struct {
	store *Store
}

func (r *rsvpResponseRepository) Create(_ context.Context, resp *domain.RsvpResponse) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[resp.EventID]; !ok {
		return domain.ErrNotFound
	}
	resp.ID = uuid.NewString()
	s.responses[resp.EventID] = append(s.responses[resp.EventID], *resp)
	return nil
}

// ListByEventID returns responses newest first.
func (r *rsvpResponseRepository) ListByEventID(_ context.Context, eventID string, params domain.PaginationParams) ([]*domain.RsvpResponse, int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.responses[eventID]
	total := len(all)
	out := make([]*domain.RsvpResponse, 0)
	offset := params.Offset()
	if offset >= total {
		return out, total, nil
	}
	for i := total - 1 - offset; i >= 0 && i < total && len(out) < params.PageSize; i-- {
		resp := all[i]
		out = append(out, &resp)
	}
	return out, total, nil
}
