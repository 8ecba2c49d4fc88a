package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// CreateWorkoutInput defines the data required to log a workout.
type CreateWorkoutInput struct {
	WorkoutName     string `json:"workout_name" validate:"required,min=1,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=600"`
	CaloriesBurned  int    `json:"calories_burned" validate:"min=0,max=5000"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateWorkoutInput carries a partial update. Nil fields are left unchanged.
type UpdateWorkoutInput struct {
	WorkoutName     *string `json:"workout_name" validate:"omitempty,min=1,max=100"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=600"`
	CaloriesBurned  *int    `json:"calories_burned" validate:"omitempty,min=0,max=5000"`
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ListRangeInput bounds a list or aggregate query by date. Both bounds are
// optional and inclusive.
type ListRangeInput struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// --- Output DTOs ---

// WeeklyCaloriesOutput totals calories burned over the trailing seven days.
type WeeklyCaloriesOutput struct {
	TotalCalories int    `json:"weekly_calories_burned"`
	Since         string `json:"since"`
}

// WorkoutUsecase defines the interface for workout-related business operations.
// All operations are scoped to the authenticated user.
type WorkoutUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateWorkoutInput) (*entity.Workout, error)
	List(ctx context.Context, userID int64, input *ListRangeInput) ([]*entity.Workout, error)
	Get(ctx context.Context, userID, workoutID int64) (*entity.Workout, error)
	Update(ctx context.Context, userID, workoutID int64, input *UpdateWorkoutInput) (*entity.Workout, error)
	Delete(ctx context.Context, userID, workoutID int64) error
	WeeklyCalories(ctx context.Context, userID int64) (*WeeklyCaloriesOutput, error)
	WeeklyFrequency(ctx context.Context, userID int64) ([]*entity.WeeklyFrequency, error)
}
