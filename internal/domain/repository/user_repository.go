// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenNotFound is returned when a bearer token resolves to no valid user.
var ErrTokenNotFound = errors.New("token not found")

// UserRepository is the credential store: user rows plus their token columns.
// The application layer depends on this interface, not the GORM implementation.
type UserRepository interface {
	// Create persists a new user. Duplicate username or email surfaces as a
	// Conflict domain error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByIdentifier retrieves a user whose username OR email equals the
	// given identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// FindByToken resolves a bearer token to its user. Only rows whose token
	// is still marked valid match; everything else is ErrTokenNotFound.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// SetToken stores a freshly issued token on the user row, superseding
	// any previous one.
	SetToken(ctx context.Context, userID int64, token string) error

	// ClearToken invalidates whatever token the user currently holds.
	ClearToken(ctx context.Context, userID int64) error
}
