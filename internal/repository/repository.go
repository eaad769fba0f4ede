package repository

import (
	"context"

	"clubhub-backend/internal/domain"
)

type ApplicationRepository interface {
	// Create persists a new application keyed by its natural key (email).
	// Returns domain.ErrAlreadyExists if one already exists for the address.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByEmail(ctx context.Context, email string) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}

type RegistrationRepository interface {
	// Create persists a new registration keyed by (eventID, email).
	// Returns domain.ErrAlreadyExists for a duplicate pair.
	Create(ctx context.Context, reg *domain.Registration) error
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	List(ctx context.Context) ([]domain.Member, error)
}

type DeadLetterRepository interface {
	Create(ctx context.Context, letter *domain.DeadLetter) error
	List(ctx context.Context, limit int) ([]domain.DeadLetter, error)
	Update(ctx context.Context, letter *domain.DeadLetter) error
	Delete(ctx context.Context, id string) error
}
