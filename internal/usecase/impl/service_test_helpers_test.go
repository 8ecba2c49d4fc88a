package impl

import (
	"context"
	"log/slog"
	"testing"

	"fittrack/internal/infra/auth"
	"fittrack/internal/infra/persistence/sqlite"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// serviceFixtures wires every service against one shared in-memory database,
// which keeps the tests honest about cross-service effects (dashboard totals,
// token revocation).
type serviceFixtures struct {
	db        *gorm.DB
	authSvc   usecase.AuthUsecase
	workouts  usecase.WorkoutUsecase
	nutrition usecase.NutritionUsecase
	profile   usecase.ProfileUsecase
}

func createServiceFixtures(t *testing.T) *serviceFixtures {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	db, err := sqlite.Open(":memory:", logger, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	userRepo := sqlite.NewUserRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	mealRepo := sqlite.NewMealRepository(db)
	weightRepo := sqlite.NewWeightRepository(db)

	hasher := auth.NewBcryptHasherWithCost(4)
	tokens := auth.NewTokenServiceWithSize(userRepo, 32)

	return &serviceFixtures{
		db: db,
		authSvc: NewAuthService(AuthServiceParams{
			TxManager:    sqlite.NewTransactionManager(db),
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       logger,
		}),
		workouts: NewWorkoutService(WorkoutServiceParams{
			WorkoutRepo: workoutRepo,
			Logger:      logger,
		}),
		nutrition: NewNutritionService(NutritionServiceParams{
			MealRepo: mealRepo,
			Logger:   logger,
		}),
		profile: NewProfileService(ProfileServiceParams{
			UserRepo:    userRepo,
			WorkoutRepo: workoutRepo,
			MealRepo:    mealRepo,
			WeightRepo:  weightRepo,
			Logger:      logger,
		}),
	}
}

// registerUser creates an account through the real registration flow and
// returns its id.
func registerUser(t *testing.T, fx *serviceFixtures, username string) int64 {
	t.Helper()

	out, err := fx.authSvc.Register(context.Background(), &usecase.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	return out.User.ID
}
