package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventory/internal/delivery/http/middleware"
	"eventory/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// withIdentity runs the request as userID, or anonymously when userID is empty.
func withIdentity(r *http.Request, userID string) *http.Request {
	id := domain.Anonymous()
	if userID != "" {
		id = domain.UserIdentity(userID)
	}
	return r.WithContext(middleware.SetIdentity(r.Context(), id))
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr   error
	getErr      error
	event       *domain.Event
	lastInput   domain.CreateEventInput
	lastOwner   domain.Identity
	lastGetID   string
	createCalls int
}

func (f *fakeEventService) CreateEvent(ctx context.Context, in domain.CreateEventInput, owner domain.Identity) (*domain.Event, *domain.RsvpForm, error) {
	f.createCalls++
	f.lastInput, f.lastOwner = in, owner
	if f.createErr != nil {
		return nil, nil, f.createErr
	}
	e := domain.NewEvent(in.Name, in.Location, in.Date, in.PublicEvent, owner, testTime)
	e.ID = "ev-1"
	form := domain.NewRsvpForm(in.Name, testTime)
	form.ID = e.ID
	return e, form, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string, caller domain.Identity) (*domain.Event, error) {
	f.lastGetID = eventID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.event, nil
}

// fakeFormService implements domain.FormService for handler tests.
type fakeFormService struct {
	form        *domain.RsvpForm
	getErr      error
	updateErr   error
	lastFormID  string
	lastPatch   domain.RsvpFormPatch
	lastCaller  domain.Identity
	updateCalls int
}

func (f *fakeFormService) GetForm(ctx context.Context, formID string) (*domain.RsvpForm, error) {
	f.lastFormID = formID
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.form == nil {
		return nil, domain.ErrNotFound
	}
	return f.form, nil
}

func (f *fakeFormService) UpdateForm(ctx context.Context, formID string, patch domain.RsvpFormPatch, caller domain.Identity) (*domain.RsvpForm, error) {
	f.updateCalls++
	f.lastFormID, f.lastPatch, f.lastCaller = formID, patch, caller
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.form, nil
}

// fakeRsvpService implements domain.RsvpService for handler tests.
type fakeRsvpService struct {
	submitErr   error
	listErr     error
	responses   []*domain.RsvpResponse
	total       int
	lastInput   domain.SubmitRsvpInput
	lastCaller  domain.Identity
	lastParams  domain.PaginationParams
	submitCalls int
}

func (f *fakeRsvpService) Submit(ctx context.Context, in domain.SubmitRsvpInput) (*domain.RsvpResponse, error) {
	f.submitCalls++
	f.lastInput = in
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.RsvpResponse{ID: "resp-1", EventID: in.EventID}, nil
}

func (f *fakeRsvpService) ListResponses(ctx context.Context, eventID string, caller domain.Identity, params domain.PaginationParams) ([]*domain.RsvpResponse, int, error) {
	f.lastCaller, f.lastParams = caller, params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.responses, f.total, nil
}
