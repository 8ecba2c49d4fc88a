// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"fittrack/config"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
)

const defaultTokenBytes = 32

// opaqueTokenService implements TokenService with random bearer tokens
// persisted on the user row. Validation is an exact database lookup; there
// is no signature or claims payload involved.
type opaqueTokenService struct {
	users      repository.UserRepository
	tokenBytes int
}

// NewTokenService is the constructor for opaqueTokenService.
func NewTokenService(users repository.UserRepository, cfg *config.Config) service.TokenService {
	tokenBytes := defaultTokenBytes
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenBytes > 0 {
		tokenBytes = cfg.Auth.TokenBytes
	}

	return NewTokenServiceWithSize(users, tokenBytes)
}

// NewTokenServiceWithSize is the config-free constructor shared with tests.
func NewTokenServiceWithSize(users repository.UserRepository, tokenBytes int) service.TokenService {
	return &opaqueTokenService{
		users:      users,
		tokenBytes: tokenBytes,
	}
}

// Issue generates a fresh random token and stores it on the user row.
// Storing overwrites any previous token, so only the most recent login's
// token stays valid.
func (s *opaqueTokenService) Issue(ctx context.Context, userID int64) (string, error) {
	raw := make([]byte, s.tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for token")
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	if err := s.users.SetToken(ctx, userID, token); err != nil {
		return "", errors.Wrap(err, "failed to persist issued token")
	}

	return token, nil
}

// Validate resolves the token to its user by exact lookup. Empty, unknown,
// and revoked tokens all collapse to the same Unauthorized error.
func (s *opaqueTokenService) Validate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "empty bearer token")
	}

	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "unknown or revoked token")
		}

		return nil, errors.Wrap(err, "failed to resolve token")
	}

	return user, nil
}

// Revoke clears whatever token the user currently holds.
func (s *opaqueTokenService) Revoke(ctx context.Context, userID int64) error {
	if err := s.users.ClearToken(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear token")
	}

	return nil
}
