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

type deadLetterRepository struct {
	client *firestore.Client
}

func NewDeadLetterRepository(client *firestore.Client) repository.DeadLetterRepository {
	return &deadLetterRepository{client: client}
}

func (r *deadLetterRepository) Create(ctx context.Context, letter *domain.DeadLetter) error {
	now := time.Now().UTC()
	letter.CreatedAt = now
	letter.LastAttemptAt = now

	ref := r.client.Collection(deadLettersCollection).Doc(uuid.NewString())
	if _, err := ref.Create(ctx, letter); err != nil {
		return fmt.Errorf("failed to create dead letter: %w", err)
	}
	letter.ID = ref.ID
	return nil
}

func (r *deadLetterRepository) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	iter := r.client.Collection(deadLettersCollection).
		OrderBy("created_at", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var letters []domain.DeadLetter
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list dead letters: %w", err)
		}
		var letter domain.DeadLetter
		if err := snap.DataTo(&letter); err != nil {
			return nil, fmt.Errorf("failed to decode dead letter %s: %w", snap.Ref.ID, err)
		}
		letter.ID = snap.Ref.ID
		letters = append(letters, letter)
	}
	return letters, nil
}

func (r *deadLetterRepository) Update(ctx context.Context, letter *domain.DeadLetter) error {
	letter.LastAttemptAt = time.Now().UTC()
	_, err := r.client.Collection(deadLettersCollection).Doc(letter.ID).Set(ctx, letter)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update dead letter: %w", err)
	}
	return nil
}

func (r *deadLetterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(deadLettersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete dead letter: %w", err)
	}
	return nil
}
