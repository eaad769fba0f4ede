package firestore

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"

	"clubhub-backend/internal/repository"
)

// Collection names.
const (
	applicationsCollection  = "applications"
	registrationsCollection = "registrations"
	eventsCollection        = "events"
	membersCollection       = "members"
	deadLettersCollection   = "dead_letters"
)

// Store aggregates all Firestore-backed repositories.
type Store struct {
	Applications  repository.ApplicationRepository
	Registrations repository.RegistrationRepository
	Events        repository.EventRepository
	Members       repository.MemberRepository
	DeadLetters   repository.DeadLetterRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		Applications:  NewApplicationRepository(client),
		Registrations: NewRegistrationRepository(client),
		Events:        NewEventRepository(client),
		Members:       NewMemberRepository(client),
		DeadLetters:   NewDeadLetterRepository(client),
	}
}

// NewClient opens the Firestore client from the shared Firebase app handle.
func NewClient(ctx context.Context, app *fb.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}

// naturalKeyID derives a deterministic document ID from a record's natural
// key. Keying documents this way makes duplicate creates collide in the
// store itself, closing the check-then-act race between the duplicate
// pre-check and the write.
func naturalKeyID(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
