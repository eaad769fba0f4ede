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

type applicationRepository struct {
	client *firestore.Client
}

func NewApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &applicationRepository{client: client}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	app.CreatedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	ref := r.client.Collection(applicationsCollection).Doc(naturalKeyID(app.Email))
	// Create-only write: a concurrent duplicate loses here even if it
	// slipped past the duplicate pre-check.
	if _, err := ref.Create(ctx, app); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	app.ID = ref.ID
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	snap, err := r.client.Collection(applicationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return applicationFromSnap(snap)
}

func (r *applicationRepository) GetByEmail(ctx context.Context, email string) (*domain.Application, error) {
	return r.GetByID(ctx, naturalKeyID(email))
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	iter := r.client.Collection(applicationsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var apps []domain.Application
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list applications: %w", err)
		}
		app, err := applicationFromSnap(snap)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	_, err := r.client.Collection(applicationsCollection).Doc(app.ID).Set(ctx, app)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, st domain.ApplicationStatus) error {
	_, err := r.client.Collection(applicationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(applicationsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

func applicationFromSnap(snap *firestore.DocumentSnapshot) (*domain.Application, error) {
	var app domain.Application
	if err := snap.DataTo(&app); err != nil {
		return nil, fmt.Errorf("failed to decode application %s: %w", snap.Ref.ID, err)
	}
	app.ID = snap.Ref.ID
	return &app, nil
}
