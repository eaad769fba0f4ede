package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type adminService struct {
	apps     repository.ApplicationRepository
	regs     repository.RegistrationRepository
	members  repository.MemberRepository
	notifier Notifier
}

func NewAdminService(
	apps repository.ApplicationRepository,
	regs repository.RegistrationRepository,
	members repository.MemberRepository,
	notifier Notifier,
) AdminService {
	return &adminService{
		apps:     apps,
		regs:     regs,
		members:  members,
		notifier: notifier,
	}
}

func (s *adminService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return s.apps.List(ctx)
}

// UpdateApplication applies a partial field update. Absent fields stay
// untouched; present fields pass the same length validation as intake.
func (s *adminService) UpdateApplication(ctx context.Context, id string, upd ApplicationUpdate) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("Application not found")
		}
		return fmt.Errorf("failed to get application: %w", err)
	}

	for _, f := range []struct {
		value *string
		name  string
		max   int
		dst   *string
	}{
		{upd.Name, "Name", maxShortFieldLength, &app.Name},
		{upd.Branch, "Branch", maxShortFieldLength, &app.Branch},
		{upd.Year, "Year", maxShortFieldLength, &app.Year},
		{upd.College, "College", maxShortFieldLength, &app.College},
		{upd.Domain, "Domain", maxShortFieldLength, &app.Domain},
		{upd.Reason, "Reason", maxFreeTextLength, &app.Reason},
		{upd.LinkedIn, "LinkedIn profile", maxLinkLength, &app.LinkedIn},
		{upd.GitHub, "GitHub profile", maxLinkLength, &app.GitHub},
	} {
		if f.value == nil {
			continue
		}
		if f.name == "Name" && *f.value == "" {
			return domain.NewValidationError("Name is required")
		}
		if err := checkLength(*f.value, f.name, f.max); err != nil {
			return err
		}
		*f.dst = *f.value
	}

	if err := s.apps.Update(ctx, app); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// UpdateApplicationStatus moves an application through its lifecycle.
// Approval also derives a Member record; the status change is mirrored to
// the spreadsheet channel best-effort.
func (s *adminService) UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	switch status {
	case domain.ApplicationStatusPending, domain.ApplicationStatusApproved, domain.ApplicationStatusRejected:
	default:
		return nil, domain.NewValidationError("Invalid status value")
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("Application not found")
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if err := s.apps.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status

	if status == domain.ApplicationStatusApproved {
		member := &domain.Member{
			Name:   app.Name,
			Email:  app.Email,
			Branch: app.Branch,
			Year:   app.Year,
			Domain: app.Domain,
		}
		if err := s.members.Create(ctx, member); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			// The approval itself stands; the member record can be fixed up.
			logger.Error("Failed to create member for approved application", "application_id", id, "error", err)
		}
	}

	s.notifier.ApplicationStatusChanged(ctx, app)

	return app, nil
}

func (s *adminService) DeleteApplication(ctx context.Context, id string) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("Application not found")
		}
		return fmt.Errorf("failed to get application: %w", err)
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	s.notifier.ApplicationDeleted(ctx, app.Email)
	return nil
}

func (s *adminService) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return s.regs.ListByEvent(ctx, eventID)
}

func (s *adminService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.members.List(ctx)
}
