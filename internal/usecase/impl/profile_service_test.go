package impl

import (
	"context"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_WeightLifecycle(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "alice")

	created, err := fx.profile.CreateWeight(ctx, userID, &usecase.CreateWeightInput{
		WeightKg: 72.5,
		Date:     "2026-07-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := fx.profile.UpdateWeight(ctx, userID, created.ID, &usecase.UpdateWeightInput{
		WeightKg: ptr(71.8),
	})
	require.NoError(t, err)
	assert.InDelta(t, 71.8, updated.WeightKg, 0.001)
	assert.Equal(t, "2026-07-01", updated.Date)

	require.NoError(t, fx.profile.DeleteWeight(ctx, userID, created.ID))

	_, err = fx.profile.GetWeight(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrWeightNotFound)
}

func TestProfileService_WeightsOrderedOldestFirst(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "bob")

	for _, date := range []string{"2026-07-10", "2026-07-01", "2026-07-05"} {
		_, err := fx.profile.CreateWeight(ctx, userID, &usecase.CreateWeightInput{WeightKg: 70, Date: date})
		require.NoError(t, err)
	}

	weights, err := fx.profile.ListWeights(ctx, userID, &usecase.ListRangeInput{})
	require.NoError(t, err)
	require.Len(t, weights, 3)
	assert.Equal(t, "2026-07-01", weights[0].Date)
	assert.Equal(t, "2026-07-10", weights[2].Date)
}

func TestProfileService_Dashboard(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "carol")
	other := registerUser(t, fx, "dave")

	_, err := fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName: "run", DurationMinutes: 30, CaloriesBurned: 300, Date: "2026-07-01",
	})
	require.NoError(t, err)
	_, err = fx.workouts.Create(ctx, userID, &usecase.CreateWorkoutInput{
		WorkoutName: "lift", DurationMinutes: 45, CaloriesBurned: 200, Date: "2026-07-02",
	})
	require.NoError(t, err)
	_, err = fx.nutrition.Create(ctx, userID, &usecase.CreateMealInput{
		MealName: "oats", Calories: 400, Date: "2026-07-01",
	})
	require.NoError(t, err)

	// Another user's data must not leak into the dashboard.
	_, err = fx.workouts.Create(ctx, other, &usecase.CreateWorkoutInput{
		WorkoutName: "bike", DurationMinutes: 60, CaloriesBurned: 999, Date: "2026-07-01",
	})
	require.NoError(t, err)

	stats, err := fx.profile.Dashboard(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "carol", stats.Username)
	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 500, stats.TotalCaloriesBurned)
	assert.Equal(t, 400, stats.TotalCaloriesConsumed)
}

func TestProfileService_DashboardEmpty(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "erin")

	stats, err := fx.profile.Dashboard(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.TotalCaloriesBurned)
	assert.Zero(t, stats.TotalCaloriesConsumed)
}
