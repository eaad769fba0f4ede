package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type registrationRepository struct {
	client *firestore.Client
}

func NewRegistrationRepository(client *firestore.Client) repository.RegistrationRepository {
	return &registrationRepository{client: client}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	reg.CreatedAt = time.Now().UTC()
	if reg.Status == "" {
		reg.Status = domain.RegistrationStatusRegistered
	}

	ref := r.client.Collection(registrationsCollection).Doc(naturalKeyID(reg.EventID, reg.Email))
	if _, err := ref.Create(ctx, reg); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	reg.ID = ref.ID
	return nil
}

func (r *registrationRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	snap, err := r.client.Collection(registrationsCollection).Doc(naturalKeyID(eventID, email)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return registrationFromSnap(snap)
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	iter := r.client.Collection(registrationsCollection).
		Where("event_id", "==", eventID).
		Documents(ctx)
	defer iter.Stop()

	var regs []domain.Registration
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list registrations: %w", err)
		}
		reg, err := registrationFromSnap(snap)
		if err != nil {
			return nil, err
		}
		regs = append(regs, *reg)
	}
	return regs, nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(registrationsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}

func registrationFromSnap(snap *firestore.DocumentSnapshot) (*domain.Registration, error) {
	var reg domain.Registration
	if err := snap.DataTo(&reg); err != nil {
		return nil, fmt.Errorf("failed to decode registration %s: %w", snap.Ref.ID, err)
	}
	reg.ID = snap.Ref.ID
	return &reg, nil
}
