package service

import (
	"context"

	"fittrack/internal/domain/entity"
)

// TokenService manages the lifecycle of opaque bearer tokens. Tokens are
// random, unguessable strings persisted on the user row and resolved by
// exact lookup; there is no claims payload to decode.
type TokenService interface {
	// Issue generates a fresh token for the user and persists it,
	// superseding any previously issued token (single session per user).
	Issue(ctx context.Context, userID int64) (string, error)

	// Validate resolves a bearer token to its user. Empty, unknown, or
	// revoked tokens fail with an Unauthorized domain error.
	Validate(ctx context.Context, token string) (*entity.User, error)

	// Revoke invalidates the token held by the given user unconditionally.
	Revoke(ctx context.Context, userID int64) error
}
