package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// CreateMealInput defines the data required to log a meal.
type CreateMealInput struct {
	MealName string  `json:"meal_name" validate:"required,min=1,max=100"`
	Calories int     `json:"calories" validate:"min=0,max=10000"`
	Protein  float64 `json:"protein" validate:"min=0,max=1000"`
	Carbs    float64 `json:"carbs" validate:"min=0,max=1000"`
	Fats     float64 `json:"fats" validate:"min=0,max=1000"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateMealInput carries a partial update. Nil fields are left unchanged.
type UpdateMealInput struct {
	MealName *string  `json:"meal_name" validate:"omitempty,min=1,max=100"`
	Calories *int     `json:"calories" validate:"omitempty,min=0,max=10000"`
	Protein  *float64 `json:"protein" validate:"omitempty,min=0,max=1000"`
	Carbs    *float64 `json:"carbs" validate:"omitempty,min=0,max=1000"`
	Fats     *float64 `json:"fats" validate:"omitempty,min=0,max=1000"`
	Date     *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// NutritionUsecase defines the interface for meal-related business operations.
// All operations are scoped to the authenticated user.
type NutritionUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateMealInput) (*entity.Meal, error)
	List(ctx context.Context, userID int64, input *ListRangeInput) ([]*entity.Meal, error)
	Get(ctx context.Context, userID, mealID int64) (*entity.Meal, error)
	Update(ctx context.Context, userID, mealID int64, input *UpdateMealInput) (*entity.Meal, error)
	Delete(ctx context.Context, userID, mealID int64) error
	Macros(ctx context.Context, userID int64, input *ListRangeInput) ([]*entity.MacroTotals, error)
}
