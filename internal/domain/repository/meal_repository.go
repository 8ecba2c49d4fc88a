package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"
)

// ErrMealNotFound covers both a missing row and a row owned by another user.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository persists nutrition entries, always scoped by owner.
type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) error

	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Meal, error)

	// ListByUser returns the user's meals ordered by date DESC, id DESC.
	ListByUser(ctx context.Context, userID int64, dates DateRange) ([]*entity.Meal, error)

	Update(ctx context.Context, meal *entity.Meal) error

	DeleteByIDAndUser(ctx context.Context, id, userID int64) error

	// MacrosByDate totals calories/protein/carbs/fats per calendar day
	// within the optional range, oldest day first.
	MacrosByDate(ctx context.Context, userID int64, dates DateRange) ([]*entity.MacroTotals, error)

	// SumCaloriesByUser returns the lifetime calories consumed.
	SumCaloriesByUser(ctx context.Context, userID int64) (int, error)
}
