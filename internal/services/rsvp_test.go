package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventory/internal/domain"
	"eventory/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rsvpFixture struct {
	store     *fakeStore
	email     *fakeEmailService
	publisher *fakePublisher
	svc       *rsvpService
}

func newRsvpFixture(form *domain.RsvpForm) *rsvpFixture {
	store := newFakeStore()
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	store.addEvent(&domain.Event{ID: "ev-1", Name: "Annual Meetup", Location: "123 Main St", Date: &date, CreatorID: "owner"}, form)
	email := &fakeEmailService{}
	publisher := &fakePublisher{}
	svc := NewRsvpService(fakeFormRepo{store}, fakeEventRepo{store}, fakeResponseRepo{store}, email, publisher, testLogger, time.Second).(*rsvpService)
	svc.now = func() time.Time { return testTime }
	return &rsvpFixture{store: store, email: email, publisher: publisher, svc: svc}
}

func TestRsvpService_Submit(t *testing.T) {
	ctx := context.Background()
	valid := domain.SubmitRsvpInput{EventID: "ev-1", Name: " Ada ", Email: "ada@example.com", Attending: "going"}

	t.Run("stores response and notifies", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		resp, err := fx.svc.Submit(ctx, valid)
		require.NoError(t, err)
		require.NotEmpty(t, resp.ID)
		assert.Equal(t, "Ada", resp.Name)
		assert.Equal(t, domain.AttendanceGoing, resp.Attending)
		assert.Equal(t, testTime, resp.CreatedAt)

		require.Len(t, fx.email.sent, 1)
		assert.Equal(t, "ada@example.com", fx.email.sent[0].Email)
		assert.Equal(t, "Annual Meetup", fx.email.sent[0].EventName)
		assert.Equal(t, "Attending", fx.email.sent[0].Attending)
		assert.Equal(t, "Sunday, June 1, 2025 at 18:00 UTC", fx.email.sent[0].EventDate)

		require.Len(t, fx.publisher.published, 1)
		assert.Equal(t, resp.ID, fx.publisher.published[0].ResponseID)
		assert.Equal(t, "ev-1", fx.publisher.published[0].EventID)
	})

	t.Run("validation failure writes nothing", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		in := valid
		in.Attending = "maybe"
		in.Email = "nope"
		_, err := fx.svc.Submit(ctx, in)
		verr, ok := schema.AsValidationError(err)
		require.True(t, ok, "expected validation error, got %v", err)
		assert.True(t, verr.Has(schema.FieldAttending))
		assert.True(t, verr.Has(schema.FieldEmail))
		assert.Empty(t, fx.store.responses)
		assert.Empty(t, fx.publisher.published)
	})

	t.Run("missing event id is a validation error", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		in := valid
		in.EventID = "  "
		_, err := fx.svc.Submit(ctx, in)
		verr, ok := schema.AsValidationError(err)
		require.True(t, ok)
		assert.True(t, verr.Has(schema.FieldEventID))
	})

	t.Run("unknown event", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		in := valid
		in.EventID = "ev-404"
		_, err := fx.svc.Submit(ctx, in)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("hidden fields are neither required nor stored", func(t *testing.T) {
		form := domain.NewRsvpForm("Annual Meetup", testTime)
		form.YourNameDisplay = false
		form.EmailAddressDisplay = false
		fx := newRsvpFixture(form)

		resp, err := fx.svc.Submit(ctx, domain.SubmitRsvpInput{EventID: "ev-1", Name: "ignored", Attending: "not_going"})
		require.NoError(t, err)
		assert.Empty(t, resp.Name)
		assert.Empty(t, resp.Email)
		assert.Empty(t, fx.email.sent, "no address, no confirmation")
		assert.Len(t, fx.publisher.published, 1)
	})

	t.Run("mail and publish failures are not surfaced", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		fx.email.err = errors.New("ses down")
		fx.publisher.err = errors.New("broker down")
		resp, err := fx.svc.Submit(ctx, valid)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Len(t, fx.store.responses, 1)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
		fx.store.createErr = errDB
		_, err := fx.svc.Submit(ctx, valid)
		require.ErrorIs(t, err, errDB)
		assert.Empty(t, fx.publisher.published)
	})
}

func TestRsvpService_ListResponses(t *testing.T) {
	ctx := context.Background()
	fx := newRsvpFixture(domain.NewRsvpForm("Annual Meetup", testTime))
	for _, name := range []string{"Ada", "Grace"} {
		_, err := fx.svc.Submit(ctx, domain.SubmitRsvpInput{EventID: "ev-1", Name: name, Email: "x@example.com", Attending: "going"})
		require.NoError(t, err)
	}
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	tests := []struct {
		name    string
		eventID string
		caller  domain.Identity
		wantErr error
	}{
		{name: "owner", eventID: "ev-1", caller: domain.UserIdentity("owner")},
		{name: "anonymous", eventID: "ev-1", caller: domain.Anonymous(), wantErr: domain.ErrUnauthorized},
		{name: "other caller", eventID: "ev-1", caller: domain.UserIdentity("other"), wantErr: domain.ErrForbidden},
		{name: "missing event", eventID: "nope", caller: domain.UserIdentity("owner"), wantErr: domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := fx.svc.ListResponses(ctx, tt.eventID, tt.caller, params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, total)
			require.Len(t, got, 2)
			assert.Equal(t, "Grace", got[0].Name)
		})
	}
}
