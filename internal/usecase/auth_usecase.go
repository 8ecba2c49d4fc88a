// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginInput defines the data required to log in. The identifier matches
// either the username or the email.
type LoginInput struct {
	UsernameOrEmail string `json:"username_or_email" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public fields.
type RegisterOutput struct {
	User entity.Summary
}

// TokenOutput returns the issued bearer token after a successful login.
type TokenOutput struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Username  string `json:"username"`
	UserID    int64  `json:"user_id"`
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Logout(ctx context.Context, userID int64) error
}
