package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestWorkoutService_CreateAndList(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "alice")

	created, err := fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName:     "morning run",
		DurationMinutes: 45,
		CaloriesBurned:  400,
		Date:            "2026-05-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, userID, created.UserID)

	workouts, err := fx.workouts.List(ctx, userID, &usecase.ListRangeInput{})
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "morning run", workouts[0].WorkoutName)
}

func TestWorkoutService_PartialUpdate(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "bob")

	created, err := fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName:     "lift",
		DurationMinutes: 60,
		CaloriesBurned:  300,
		Date:            "2026-05-02",
	})
	require.NoError(t, err)

	updated, err := fx.workouts.Update(ctx, userID, created.ID, &usecase.UpdateWorkoutInput{
		CaloriesBurned: ptr(350),
	})
	require.NoError(t, err)
	assert.Equal(t, 350, updated.CaloriesBurned)
	// Untouched fields survive.
	assert.Equal(t, "lift", updated.WorkoutName)
	assert.Equal(t, 60, updated.DurationMinutes)
	assert.Equal(t, "2026-05-02", updated.Date)
}

func TestWorkoutService_NotFoundForForeignWorkout(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	owner := registerUser(t, fx, "carol")
	intruder := registerUser(t, fx, "dave")

	created, err := fx.workouts.Create(ctx, owner, &usecase.CreateWorkoutInput{
		WorkoutName:     "swim",
		DurationMinutes: 30,
		Date:            "2026-05-03",
	})
	require.NoError(t, err)

	_, err = fx.workouts.Get(ctx, intruder, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrWorkoutNotFound)

	_, err = fx.workouts.Update(ctx, intruder, created.ID, &usecase.UpdateWorkoutInput{CaloriesBurned: ptr(1)})
	assert.ErrorIs(t, err, domainerrors.ErrWorkoutNotFound)

	err = fx.workouts.Delete(ctx, intruder, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrWorkoutNotFound)
}

func TestWorkoutService_WeeklyCalories(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "erin")

	today := time.Now()
	inWindow := today.AddDate(0, 0, -3).Format("2006-01-02")
	outOfWindow := today.AddDate(0, 0, -10).Format("2006-01-02")

	_, err := fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName: "recent", DurationMinutes: 30, CaloriesBurned: 250, Date: inWindow,
	})
	require.NoError(t, err)
	_, err = fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName: "stale", DurationMinutes: 30, CaloriesBurned: 999, Date: outOfWindow,
	})
	require.NoError(t, err)

	out, err := fx.workouts.WeeklyCalories(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 250, out.TotalCalories)
	assert.NotEmpty(t, out.Since)
}

func TestWorkoutService_WeeklyFrequency(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "frank")

	for _, date := range []string{"2026-01-05", "2026-01-06", "2026-01-13"} {
		_, err := fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
			WorkoutName: "run", DurationMinutes: 30, Date: date,
		})
		require.NoError(t, err)
	}

	weeks, err := fx.workouts.WeeklyFrequency(ctx, userID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, 2, weeks[0].WorkoutCount)
	assert.Equal(t, 1, weeks[1].WorkoutCount)
}
