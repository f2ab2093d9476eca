package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"eventory/internal/domain"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testTime   = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	errDB      = errors.New("db down")
)

// fakeStore is an in-memory implementation of the three repositories.
type fakeStore struct {
	events    map[string]*domain.Event
	forms     map[string]*domain.RsvpForm
	responses []*domain.RsvpResponse
	nextID    int
	createErr error // if set, CreateWithForm and Create return this error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events: make(map[string]*domain.Event),
		forms:  make(map[string]*domain.RsvpForm),
		nextID: 1,
	}
}

func (f *fakeStore) addEvent(e *domain.Event, form *domain.RsvpForm) {
	form.ID = e.ID
	f.events[e.ID] = e
	f.forms[e.ID] = form
}

type fakeEventRepo struct{ *fakeStore }

func (f fakeEventRepo) CreateWithForm(ctx context.Context, e *domain.Event, form *domain.RsvpForm) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.addEvent(e, form)
	return nil
}

func (f fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

type fakeFormRepo struct{ *fakeStore }

func (f fakeFormRepo) GetByID(ctx context.Context, id string) (*domain.RsvpForm, error) {
	if form, ok := f.forms[id]; ok {
		return form, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeFormRepo) Update(ctx context.Context, id string, patch domain.RsvpFormPatch) (*domain.RsvpForm, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	form.Apply(patch, testTime)
	return form, nil
}

type fakeResponseRepo struct{ *fakeStore }

func (f fakeResponseRepo) Create(ctx context.Context, r *domain.RsvpResponse) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.events[r.EventID]; !ok {
		return domain.ErrNotFound
	}
	r.ID = fmt.Sprintf("resp-%d", f.nextID)
	f.nextID++
	f.fakeStore.responses = append(f.fakeStore.responses, r)
	return nil
}

func (f fakeResponseRepo) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.RsvpResponse, int, error) {
	var out []*domain.RsvpResponse
	for i := len(f.fakeStore.responses) - 1; i >= 0; i-- {
		if r := f.fakeStore.responses[i]; r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

// fakeEmailService records confirmations instead of sending them.
type fakeEmailService struct {
	sent []*domain.RsvpConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendRsvpConfirmation(ctx context.Context, data *domain.RsvpConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakePublisher struct {
	published []*domain.RsvpSubmitted
	err       error
}

func (f *fakePublisher) PublishRsvpSubmitted(ctx context.Context, msg *domain.RsvpSubmitted) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakePublisher) Close() error { return nil }
