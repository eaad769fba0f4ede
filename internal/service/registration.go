package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/validation"
)

type registrationService struct {
	regs           repository.RegistrationRepository
	events         repository.EventRepository
	emailValidator *validation.EmailValidator
	notifier       Notifier
	testMode       bool
	minFillTime    time.Duration
	now            func() time.Time
}

func NewRegistrationService(
	regs repository.RegistrationRepository,
	events repository.EventRepository,
	emailValidator *validation.EmailValidator,
	notifier Notifier,
	testMode bool,
	minFillTime time.Duration,
) RegistrationService {
	return &registrationService{
		regs:           regs,
		events:         events,
		emailValidator: emailValidator,
		notifier:       notifier,
		testMode:       testMode,
		minFillTime:    minFillTime,
		now:            time.Now,
	}
}

// Register runs the event-registration intake pipeline. The event-existence
// check runs before the duplicate check; no write happens until every
// validation has passed.
func (s *registrationService) Register(ctx context.Context, sub RegistrationSubmission) (*SubmissionResult, error) {
	if trapped(sub.Honeypot, sub.FormStartedAt, s.minFillTime, s.now) {
		logger.Info("Registration discarded by spam trap", "email", sub.Email, "event_id", sub.EventID)
		return &SubmissionResult{Message: s.successMessage()}, nil
	}

	for _, f := range []struct{ value, name string }{
		{sub.EventID, "Event ID"},
		{sub.Name, "Name"},
		{sub.Email, "Email"},
	} {
		if err := requireField(f.value, f.name); err != nil {
			return nil, err
		}
	}

	for _, f := range []struct {
		value, name string
		max         int
	}{
		{sub.Name, "Name", maxShortFieldLength},
		{sub.Email, "Email", maxShortFieldLength},
		{sub.Team, "Team", maxShortFieldLength},
		{sub.Department, "Department", maxShortFieldLength},
		{sub.EnrollmentNo, "Enrollment number", maxShortFieldLength},
	} {
		if err := checkLength(f.value, f.name, f.max); err != nil {
			return nil, err
		}
	}

	if res := s.emailValidator.Validate(ctx, sub.Email); !res.Valid {
		return nil, domain.NewValidationError(res.Reason)
	}

	responses, res := validation.ParseResponses(sub.Responses)
	if !res.Valid {
		return nil, domain.NewValidationError(res.Reason)
	}

	event, err := s.events.GetByID(ctx, sub.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("Event not found")
		}
		return nil, fmt.Errorf("event lookup failed: %w", err)
	}

	if _, err := s.regs.GetByEventAndEmail(ctx, sub.EventID, sub.Email); err == nil {
		return nil, domain.NewConflictError("Already registered for this event")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}

	reg := &domain.Registration{
		EventID:      event.ID,
		EventTitle:   event.Title,
		Name:         sub.Name,
		Email:        sub.Email,
		Team:         sub.Team,
		Department:   sub.Department,
		EnrollmentNo: sub.EnrollmentNo,
		Responses:    responses,
		Status:       domain.RegistrationStatusRegistered,
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("Already registered for this event")
		}
		return nil, fmt.Errorf("failed to persist registration: %w", err)
	}

	s.notifier.RegistrationSubmitted(ctx, reg)

	return &SubmissionResult{ID: reg.ID, Message: s.successMessage()}, nil
}

func (s *registrationService) successMessage() string {
	if s.testMode {
		return "Registration received in test mode"
	}
	return "Registration successful"
}
