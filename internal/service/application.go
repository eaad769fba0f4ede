package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/validation"
)

// Free-text length limits shared by the intake pipelines.
const (
	maxShortFieldLength = 100
	maxLinkLength       = 200
	maxFreeTextLength   = 2000
)

func requireField(value, name string) *domain.Error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(name + " is required")
	}
	return nil
}

func checkLength(value, name string, max int) *domain.Error {
	if len(value) > max {
		return domain.NewValidationError(fmt.Sprintf("%s too long (maximum %d characters)", name, max))
	}
	return nil
}

type applicationService struct {
	apps           repository.ApplicationRepository
	emailValidator *validation.EmailValidator
	notifier       Notifier
	testMode       bool
	minFillTime    time.Duration
	now            func() time.Time
}

func NewApplicationService(
	apps repository.ApplicationRepository,
	emailValidator *validation.EmailValidator,
	notifier Notifier,
	testMode bool,
	minFillTime time.Duration,
) ApplicationService {
	return &applicationService{
		apps:           apps,
		emailValidator: emailValidator,
		notifier:       notifier,
		testMode:       testMode,
		minFillTime:    minFillTime,
		now:            time.Now,
	}
}

// Submit runs the intake pipeline: spam traps, field checks, email
// validation, duplicate check, persist, then best-effort notifications.
// No write happens before every validation has passed.
func (s *applicationService) Submit(ctx context.Context, sub ApplicationSubmission) (*SubmissionResult, error) {
	if trapped(sub.Honeypot, sub.FormStartedAt, s.minFillTime, s.now) {
		// Indistinguishable from success so bots learn nothing.
		logger.Info("Application discarded by spam trap", "email", sub.Email)
		return &SubmissionResult{Message: s.successMessage()}, nil
	}

	for _, f := range []struct{ value, name string }{
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
		{sub.Branch, "Branch", maxShortFieldLength},
		{sub.Year, "Year", maxShortFieldLength},
		{sub.College, "College", maxShortFieldLength},
		{sub.Domain, "Domain", maxShortFieldLength},
		{sub.Reason, "Reason", maxFreeTextLength},
		{sub.LinkedIn, "LinkedIn profile", maxLinkLength},
		{sub.GitHub, "GitHub profile", maxLinkLength},
	} {
		if err := checkLength(f.value, f.name, f.max); err != nil {
			return nil, err
		}
	}

	if res := s.emailValidator.Validate(ctx, sub.Email); !res.Valid {
		return nil, domain.NewValidationError(res.Reason)
	}

	// Fast 409 path; the create below is conflict-safe regardless.
	if _, err := s.apps.GetByEmail(ctx, sub.Email); err == nil {
		return nil, domain.NewConflictError("An application with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}

	app := &domain.Application{
		Name:     sub.Name,
		Email:    sub.Email,
		Branch:   sub.Branch,
		Year:     sub.Year,
		College:  sub.College,
		Domain:   sub.Domain,
		Reason:   sub.Reason,
		LinkedIn: sub.LinkedIn,
		GitHub:   sub.GitHub,
		Status:   domain.ApplicationStatusPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("An application with this email already exists")
		}
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	s.notifier.ApplicationSubmitted(ctx, app)

	return &SubmissionResult{ID: app.ID, Message: s.successMessage()}, nil
}

func (s *applicationService) successMessage() string {
	if s.testMode {
		return "Application received in test mode"
	}
	return "Application submitted successfully"
}

// trapped applies the honeypot and time-trap checks.
func trapped(honeypot string, startedAt int64, minFillTime time.Duration, now func() time.Time) bool {
	if honeypot != "" {
		return true
	}
	if startedAt <= 0 || minFillTime <= 0 {
		return false
	}
	return now().Sub(time.UnixMilli(startedAt)) < minFillTime
}
