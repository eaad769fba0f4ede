package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type eventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("Event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *eventService) Update(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if _, err := s.events.GetByID(ctx, event.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("Event not found")
		}
		return fmt.Errorf("failed to get event: %w", err)
	}
	if err := s.events.Update(ctx, event); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("Event not found")
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func validateEvent(event *domain.Event) error {
	if err := requireField(event.Title, "Title"); err != nil {
		return err
	}
	if err := checkLength(event.Title, "Title", maxLinkLength); err != nil {
		return err
	}
	if err := checkLength(event.Description, "Description", maxFreeTextLength); err != nil {
		return err
	}
	if err := checkLength(event.Venue, "Venue", maxShortFieldLength); err != nil {
		return err
	}
	if event.Capacity < 0 {
		return domain.NewValidationError("Capacity must not be negative")
	}
	for _, q := range event.Questions {
		if err := requireField(q, "Question"); err != nil {
			return err
		}
		if err := checkLength(q, "Question", 200); err != nil {
			return err
		}
	}
	return nil
}
