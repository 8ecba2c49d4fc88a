package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// CreateWeightInput defines the data required to log a body-weight entry.
type CreateWeightInput struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lte=500"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateWeightInput carries a partial update. Nil fields are left unchanged.
type UpdateWeightInput struct {
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
	Date     *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ProfileUsecase defines the interface for body-weight tracking and the
// dashboard summary. All operations are scoped to the authenticated user.
type ProfileUsecase interface {
	CreateWeight(ctx context.Context, userID int64, input *CreateWeightInput) (*entity.WeightEntry, error)
	ListWeights(ctx context.Context, userID int64, input *ListRangeInput) ([]*entity.WeightEntry, error)
	GetWeight(ctx context.Context, userID, weightID int64) (*entity.WeightEntry, error)
	UpdateWeight(ctx context.Context, userID, weightID int64, input *UpdateWeightInput) (*entity.WeightEntry, error)
	DeleteWeight(ctx context.Context, userID, weightID int64) error
	Dashboard(ctx context.Context, userID int64) (*entity.DashboardStats, error)
}
