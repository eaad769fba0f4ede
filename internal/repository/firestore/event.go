package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type eventRepository struct {
	client *firestore.Client
}

func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	ref := r.client.Collection(eventsCollection).Doc(uuid.NewString())
	if _, err := ref.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	event.ID = ref.ID
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	snap, err := r.client.Collection(eventsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return eventFromSnap(snap)
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	iter := r.client.Collection(eventsCollection).
		OrderBy("starts_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var events []domain.Event
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		event, err := eventFromSnap(snap)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(eventsCollection).Doc(event.ID).Set(ctx, event)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(eventsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func eventFromSnap(snap *firestore.DocumentSnapshot) (*domain.Event, error) {
	var event domain.Event
	if err := snap.DataTo(&event); err != nil {
		return nil, fmt.Errorf("failed to decode event %s: %w", snap.Ref.ID, err)
	}
	event.ID = snap.Ref.ID
	return &event, nil
}
