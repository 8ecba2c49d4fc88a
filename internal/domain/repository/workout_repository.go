package repository

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain/entity"
)

// ErrWorkoutNotFound covers both a missing row and a row owned by another
// user, so callers cannot distinguish the two.
var ErrWorkoutNotFound = errors.New("workout not found")

// DateRange is an optional date filter for list queries. Empty bounds are
// ignored; set bounds are inclusive YYYY-MM-DD strings.
type DateRange struct {
	Start string
	End   string
}

// WorkoutRepository persists workouts, always scoped by owner.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *entity.Workout) error

	// FindByIDAndUser retrieves a workout only if it belongs to the user.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Workout, error)

	// ListByUser returns the user's workouts ordered by date DESC, id DESC.
	ListByUser(ctx context.Context, userID int64, dates DateRange) ([]*entity.Workout, error)

	Update(ctx context.Context, workout *entity.Workout) error

	// DeleteByIDAndUser removes a workout; ErrWorkoutNotFound if the row is
	// absent or owned by someone else.
	DeleteByIDAndUser(ctx context.Context, id, userID int64) error

	// SumCaloriesSince totals calories burned on or after the given date.
	SumCaloriesSince(ctx context.Context, userID int64, since time.Time) (int, error)

	// CountByWeek groups the user's workouts into weekly buckets.
	CountByWeek(ctx context.Context, userID int64) ([]*entity.WeeklyFrequency, error)

	// StatsByUser returns the lifetime workout count and calorie total.
	StatsByUser(ctx context.Context, userID int64) (totalWorkouts, totalCalories int, err error)
}
