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

type memberRepository struct {
	client *firestore.Client
}

func NewMemberRepository(client *firestore.Client) repository.MemberRepository {
	return &memberRepository{client: client}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	member.JoinedAt = time.Now().UTC()

	ref := r.client.Collection(membersCollection).Doc(naturalKeyID(member.Email))
	if _, err := ref.Create(ctx, member); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	member.ID = ref.ID
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	iter := r.client.Collection(membersCollection).
		OrderBy("joined_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var members []domain.Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		var member domain.Member
		if err := snap.DataTo(&member); err != nil {
			return nil, fmt.Errorf("failed to decode member %s: %w", snap.Ref.ID, err)
		}
		member.ID = snap.Ref.ID
		members = append(members, member)
	}
	return members, nil
}
