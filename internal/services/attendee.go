package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type attendeeService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewAttendeeService creates an AttendeeService with the given stores.
// emailService may be nil, in which case no confirmation email is sent.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Register runs the three-step registration pipeline: record write, counter
// increment, history add. The steps are sequential and not transactionally
// bound; a failed step returns a *domain.PartialFailureError and leaves the
// writes of earlier steps in place.
func (s *attendeeService) Register(ctx context.Context, eventID string, identity domain.Identity, form domain.RegistrationForm) (*domain.Registration, error) {
	// Preconditions. Nothing below may write until all of them pass.
	if identity.UID == "" {
		return nil, domain.ErrUnauthorized
	}
	if identity.Role != domain.RoleStudent {
		return nil, fmt.Errorf("role %q cannot register: %w", identity.Role, domain.ErrUnauthorized)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if missing := form.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("missing fields: %s: %w", strings.Join(missing, ", "), domain.ErrInvalidInput)
	}

	reg := domain.NewRegistration(eventID, form, time.Now())

	// Step 1: write the record. Put is a full replace, so resubmitting the
	// same (event, usn) overwrites the prior record instead of failing.
	if err := s.registrationRepo.Put(ctx, reg); err != nil {
		return nil, &domain.PartialFailureError{Step: domain.StepRecord, Err: err}
	}

	// Step 2: bump the attendance counter. The increment is atomic in the
	// store but not idempotent across resubmissions: it counts write
	// attempts, not distinct registrants.
	if err := s.eventRepo.IncrementRegistrations(ctx, eventID); err != nil {
		return nil, &domain.PartialFailureError{Step: domain.StepCounter, Err: err}
	}

	// Step 3: append the event to the user's history. Add-if-absent, so
	// repeats are safe.
	if err := s.userRepo.AddRegisteredEvent(ctx, identity.UID, eventID); err != nil {
		return nil, &domain.PartialFailureError{Step: domain.StepHistory, Err: err}
	}

	s.sendConfirmation(ctx, reg, event)
	return reg, nil
}

// sendConfirmation emails the registrant. Best effort: a mail failure never
// fails a committed registration.
func (s *attendeeService) sendConfirmation(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:     reg.Email,
		Name:      reg.Name,
		EventName: event.Name,
		Venue:     event.Venue,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "registration_id", reg.ID, "err", err)
	}
}

func (s *attendeeService) ListMyRegisteredEvents(ctx context.Context, identity domain.Identity) ([]*domain.Event, error) {
	if identity.UID == "" {
		return nil, domain.ErrUnauthorized
	}
	ids, err := s.userRepo.ListRegisteredEventIDs(ctx, identity.UID)
	if err != nil {
		return nil, fmt.Errorf("list registered event ids: %w", err)
	}

	events := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		ev, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Event deleted but history remains; skip this entry.
				continue
			}
			return nil, fmt.Errorf("get event for history entry: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}
