package sqlite

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(":memory:", slog.New(slog.DiscardHandler), false)
	require.NoError(t, err)

	// Every pooled connection would otherwise get its own empty in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$notarealhash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	seedUser(t, db, "alice")

	err := repo.Create(ctx, &entity.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserConflict.ErrorCode(), appErr.ErrorCode())

	err = repo.Create(ctx, &entity.User{
		Username:     "alice2",
		Email:        "alice@example.com",
		PasswordHash: "x",
	})
	require.ErrorAs(t, err, &appErr)
}

func TestUserRepository_FindByIdentifier(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	seedUser(t, db, "bob")

	byName, err := repo.FindByIdentifier(ctx, "bob")
	require.NoError(t, err)

	byEmail, err := repo.FindByIdentifier(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	_, err = repo.FindByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_TokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := seedUser(t, db, "carol")

	require.NoError(t, repo.SetToken(ctx, user.ID, "token-one"))

	found, err := repo.FindByToken(ctx, "token-one")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// A new token supersedes the old one.
	require.NoError(t, repo.SetToken(ctx, user.ID, "token-two"))

	_, err = repo.FindByToken(ctx, "token-one")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, repo.ClearToken(ctx, user.ID))

	_, err = repo.FindByToken(ctx, "token-two")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	assert.ErrorIs(t, repo.SetToken(ctx, 9999, "x"), repository.ErrUserNotFound)
}

func seedWorkout(t *testing.T, db *gorm.DB, userID int64, name, date string, calories int) *entity.Workout {
	t.Helper()

	workout := &entity.Workout{
		UserID:          userID,
		WorkoutName:     name,
		DurationMinutes: 30,
		CaloriesBurned:  calories,
		Date:            date,
	}
	require.NoError(t, NewWorkoutRepository(db).Create(context.Background(), workout))

	return workout
}

func TestWorkoutRepository_ListOrderingAndRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewWorkoutRepository(db)
	user := seedUser(t, db, "dora")

	seedWorkout(t, db, user.ID, "run", "2026-01-05", 300)
	seedWorkout(t, db, user.ID, "lift", "2026-01-10", 200)
	second := seedWorkout(t, db, user.ID, "swim", "2026-01-10", 400)

	workouts, err := repo.ListByUser(ctx, user.ID, repository.DateRange{})
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	// Newest date first; equal dates fall back to newest id first.
	assert.Equal(t, second.ID, workouts[0].ID)
	assert.Equal(t, "lift", workouts[1].WorkoutName)
	assert.Equal(t, "run", workouts[2].WorkoutName)

	ranged, err := repo.ListByUser(ctx, user.ID, repository.DateRange{Start: "2026-01-06", End: "2026-01-10"})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestWorkoutRepository_OwnershipScope(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewWorkoutRepository(db)
	owner := seedUser(t, db, "erin")
	other := seedUser(t, db, "frank")

	workout := seedWorkout(t, db, owner.ID, "row", "2026-02-01", 250)

	_, err := repo.FindByIDAndUser(ctx, workout.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrWorkoutNotFound)

	workout.UserID = other.ID
	assert.ErrorIs(t, repo.Update(ctx, workout), repository.ErrWorkoutNotFound)
	assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, workout.ID, other.ID), repository.ErrWorkoutNotFound)

	// The owner still sees it untouched.
	kept, err := repo.FindByIDAndUser(ctx, workout.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "row", kept.WorkoutName)
}

func TestWorkoutRepository_Aggregates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewWorkoutRepository(db)
	user := seedUser(t, db, "gail")

	today := time.Now()
	recent := today.AddDate(0, 0, -2).Format("2006-01-02")
	old := today.AddDate(0, 0, -30).Format("2006-01-02")

	seedWorkout(t, db, user.ID, "recent", recent, 300)
	seedWorkout(t, db, user.ID, "old", old, 500)

	sum, err := repo.SumCaloriesSince(ctx, user.ID, today.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 300, sum)

	count, total, err := repo.StatsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 800, total)

	weeks, err := repo.CountByWeek(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, weeks)
	assert.Regexp(t, `^\d{4}-W\d{2}$`, weeks[0].Week)
}

func TestMealRepository_MacrosByDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMealRepository(db)
	user := seedUser(t, db, "hank")

	meals := []*entity.Meal{
		{UserID: user.ID, MealName: "oats", Calories: 400, Protein: 15, Carbs: 60, Fats: 8, Date: "2026-03-01"},
		{UserID: user.ID, MealName: "chicken", Calories: 600, Protein: 50, Carbs: 10, Fats: 20, Date: "2026-03-01"},
		{UserID: user.ID, MealName: "salad", Calories: 200, Protein: 5, Carbs: 20, Fats: 10, Date: "2026-03-02"},
	}
	for _, m := range meals {
		require.NoError(t, repo.Create(ctx, m))
	}

	rows, err := repo.MacrosByDate(ctx, user.ID, repository.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-01", rows[0].Date)
	assert.Equal(t, 1000, rows[0].TotalCalories)
	assert.InDelta(t, 65.0, rows[0].TotalProtein, 0.001)
	assert.Equal(t, 200, rows[1].TotalCalories)

	total, err := repo.SumCaloriesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200, total)
}

func TestWeightRepository_ListAscending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewWeightRepository(db)
	user := seedUser(t, db, "iris")

	for _, date := range []string{"2026-04-10", "2026-04-01", "2026-04-05"} {
		require.NoError(t, repo.Create(ctx, &entity.WeightEntry{UserID: user.ID, WeightKg: 70, Date: date}))
	}

	weights, err := repo.ListByUser(ctx, user.ID, repository.DateRange{})
	require.NoError(t, err)
	require.Len(t, weights, 3)
	assert.Equal(t, "2026-04-01", weights[0].Date)
	assert.Equal(t, "2026-04-05", weights[1].Date)
	assert.Equal(t, "2026-04-10", weights[2].Date)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if createErr := repos.UserRepo().Create(ctx, &entity.User{
			Username:     "jane",
			Email:        "jane@example.com",
			PasswordHash: "x",
		}); createErr != nil {
			return createErr
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByIdentifier(ctx, "jane")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.UserRepo().Create(ctx, &entity.User{
			Username:     "kyle",
			Email:        "kyle@example.com",
			PasswordHash: "x",
		})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByIdentifier(ctx, "kyle")
	require.NoError(t, err)
	assert.Equal(t, "kyle", user.Username)
}
