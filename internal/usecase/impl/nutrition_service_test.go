package impl

import (
	"context"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionService_CreateUpdateDelete(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "alice")

	created, err := fx.nutrition.Create(ctx, userID, &usecase.CreateMealInput{
		MealName: "oats",
		Calories: 400,
		Protein:  15,
		Carbs:    60,
		Fats:     8,
		Date:     "2026-06-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := fx.nutrition.Update(ctx, userID, created.ID, &usecase.UpdateMealInput{
		Calories: ptr(450),
	})
	require.NoError(t, err)
	assert.Equal(t, 450, updated.Calories)
	assert.Equal(t, "oats", updated.MealName)
	assert.InDelta(t, 15.0, updated.Protein, 0.001)

	require.NoError(t, fx.nutrition.Delete(ctx, userID, created.ID))

	_, err = fx.nutrition.Get(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestNutritionService_NotFoundForForeignMeal(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	owner := registerUser(t, fx, "bob")
	intruder := registerUser(t, fx, "carol")

	created, err := fx.nutrition.Create(ctx, owner, &usecase.CreateMealInput{
		MealName: "salad", Calories: 200, Date: "2026-06-02",
	})
	require.NoError(t, err)

	_, err = fx.nutrition.Get(ctx, intruder, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestNutritionService_Macros(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	userID := registerUser(t, fx, "dora")

	meals := []*usecase.CreateMealInput{
		{MealName: "oats", Calories: 400, Protein: 15, Carbs: 60, Fats: 8, Date: "2026-06-01"},
		{MealName: "chicken", Calories: 600, Protein: 50, Carbs: 10, Fats: 20, Date: "2026-06-01"},
		{MealName: "salad", Calories: 200, Protein: 5, Carbs: 20, Fats: 10, Date: "2026-06-02"},
	}
	for _, m := range meals {
		_, err := fx.nutrition.Create(ctx, userID, m)
		require.NoError(t, err)
	}

	rows, err := fx.nutrition.Macros(ctx, userID, &usecase.ListRangeInput{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1000, rows[0].TotalCalories)
	assert.InDelta(t, 65.0, rows[0].TotalProtein, 0.001)

	// A range bound trims the aggregation window.
	rows, err = fx.nutrition.Macros(ctx, userID, &usecase.ListRangeInput{StartDate: "2026-06-02"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 200, rows[0].TotalCalories)
}
