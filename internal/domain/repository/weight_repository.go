package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"
)

// ErrWeightNotFound covers both a missing row and a row owned by another user.
var ErrWeightNotFound = errors.New("weight entry not found")

// WeightRepository persists body-weight measurements, always scoped by owner.
type WeightRepository interface {
	Create(ctx context.Context, entry *entity.WeightEntry) error

	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.WeightEntry, error)

	// ListByUser returns the user's entries ordered by date ASC, id ASC so
	// progress charts read chronologically.
	ListByUser(ctx context.Context, userID int64, dates DateRange) ([]*entity.WeightEntry, error)

	Update(ctx context.Context, entry *entity.WeightEntry) error

	DeleteByIDAndUser(ctx context.Context, id, userID int64) error
}
