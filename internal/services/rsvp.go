package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventory/internal/domain"
	"eventory/internal/schema"
)

const eventDateLayout = "Monday, January 2, 2006 at 15:04 UTC"

type rsvpService struct {
	formRepo       domain.RsvpFormRepository
	eventRepo      domain.EventRepository
	responseRepo   domain.RsvpResponseRepository
	emailService   domain.EmailService
	publisher      domain.NotificationPublisher
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewRsvpService(
	formRepo domain.RsvpFormRepository,
	eventRepo domain.EventRepository,
	responseRepo domain.RsvpResponseRepository,
	emailService domain.EmailService,
	publisher domain.NotificationPublisher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RsvpService {
	return &rsvpService{
		formRepo:       formRepo,
		eventRepo:      eventRepo,
		responseRepo:   responseRepo,
		emailService:   emailService,
		publisher:      publisher,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Submit validates and stores a guest response. Fields the form hides are
// neither required nor kept. The confirmation mail and the notification are
// best-effort: their failures are logged and never returned.
func (s *rsvpService) Submit(ctx context.Context, in domain.SubmitRsvpInput) (*domain.RsvpResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	acc := schema.FromInput(in).Normalized()
	if acc.EventID == "" {
		return nil, acc.Validate()
	}
	form, err := s.formRepo.GetByID(ctx, acc.EventID)
	if err != nil {
		return nil, err
	}
	acc = acc.ForForm(form)
	if err := acc.ValidateFor(form); err != nil {
		return nil, err
	}

	resp := domain.NewRsvpResponse(acc.EventID, acc.Name, acc.Email, domain.Attendance(acc.Attending), s.now().UTC())
	if err := s.responseRepo.Create(ctx, resp); err != nil {
		return nil, fmt.Errorf("create rsvp response: %w", err)
	}

	s.confirm(ctx, resp)
	s.publish(ctx, resp)
	return resp, nil
}

func (s *rsvpService) confirm(ctx context.Context, resp *domain.RsvpResponse) {
	if resp.Email == "" || s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, resp.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation skipped", "event_id", resp.EventID, "err", err)
		return
	}
	data := &domain.RsvpConfirmationEmailData{
		Email:     resp.Email,
		Name:      resp.Name,
		EventName: event.Name,
		Location:  event.Location,
		Attending: resp.Attending.Label(),
	}
	if event.Date != nil {
		data.EventDate = event.Date.UTC().Format(eventDateLayout)
	}
	if err := s.emailService.SendRsvpConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation failed", "response_id", resp.ID, "err", err)
	}
}

func (s *rsvpService) publish(ctx context.Context, resp *domain.RsvpResponse) {
	if s.publisher == nil {
		return
	}
	msg := &domain.RsvpSubmitted{
		ResponseID:  resp.ID,
		EventID:     resp.EventID,
		Attending:   resp.Attending,
		SubmittedAt: resp.CreatedAt,
	}
	if err := s.publisher.PublishRsvpSubmitted(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "response_id", resp.ID, "err", err)
	}
}

// ListResponses returns an event's responses to its creator, newest first.
func (s *rsvpService) ListResponses(ctx context.Context, eventID string, caller domain.Identity, params domain.PaginationParams) ([]*domain.RsvpResponse, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !caller.Present() {
		return nil, 0, domain.ErrUnauthorized
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	if !event.OwnedBy(caller) {
		return nil, 0, domain.ErrForbidden
	}
	return s.responseRepo.ListByEventID(ctx, eventID, params)
}
