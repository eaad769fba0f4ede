package security

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the authenticated-principal context extracted from a verified
// bearer token. Admin mirrors the identity provider's custom claim.
type Claims struct {
	UID   string
	Email string
	Admin bool
}

// Verifier checks a bearer token and returns the decoded claims.
// Implementations: the Firebase ID-token verifier for production, the
// local HS256 token manager for development deployments.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
