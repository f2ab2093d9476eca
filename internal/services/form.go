package services

import (
	"context"
	"time"

	"eventory/internal/domain"
)

type formService struct {
	formRepo       domain.RsvpFormRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewFormService(formRepo domain.RsvpFormRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.FormService {
	return &formService{
		formRepo:       formRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *formService) GetForm(ctx context.Context, formID string) (*domain.RsvpForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.formRepo.GetByID(ctx, formID)
}

// UpdateForm applies patch to the form. Forms of events with a creator can
// only be changed by that creator. The form shares its event's id, so a
// missing event means a missing form; Update reports a missing form row itself.
func (s *formService) UpdateForm(ctx context.Context, formID string, patch domain.RsvpFormPatch, caller domain.Identity) (*domain.RsvpForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if !event.EditableBy(caller) {
		return nil, domain.ErrForbidden
	}
	return s.formRepo.Update(ctx, formID, patch)
}
