package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	mealRepo    repository.MealRepository
	weightRepo  repository.WeightRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	WorkoutRepo repository.WorkoutRepository
	MealRepo    repository.MealRepository
	WeightRepo  repository.WeightRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		workoutRepo: params.WorkoutRepo,
		mealRepo:    params.MealRepo,
		weightRepo:  params.WeightRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) CreateWeight(ctx context.Context, userID int64, input *usecase.CreateWeightInput) (*entity.WeightEntry, error) {
	weight := &entity.WeightEntry{
		UserID:   userID,
		WeightKg: input.WeightKg,
		Date:     input.Date,
	}

	if err := srv.weightRepo.Create(ctx, weight); err != nil {
		srv.log(ctx).Error("Failed to create weight entry", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create weight entry")
	}

	srv.log(ctx).Debug("Weight entry created", slog.Int64("userID", userID), slog.Int64("weightID", weight.ID))

	return weight, nil
}

func (srv *profileService) ListWeights(ctx context.Context, userID int64, input *usecase.ListRangeInput) ([]*entity.WeightEntry, error) {
	weights, err := srv.weightRepo.ListByUser(ctx, userID, repository.DateRange{
		Start: input.StartDate,
		End:   input.EndDate,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list weight entries", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list weight entries")
	}

	return weights, nil
}

func (srv *profileService) GetWeight(ctx context.Context, userID, weightID int64) (*entity.WeightEntry, error) {
	weight, err := srv.weightRepo.FindByIDAndUser(ctx, weightID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWeightNotFound) {
			return nil, domainerrors.ErrWeightNotFound.WrapMessage("weight entry not found")
		}

		return nil, errors.Wrap(err, "failed to find weight entry")
	}

	return weight, nil
}

// UpdateWeight applies the non-nil fields of the input to the stored entry.
func (srv *profileService) UpdateWeight(ctx context.Context, userID, weightID int64, input *usecase.UpdateWeightInput) (*entity.WeightEntry, error) {
	weight, err := srv.GetWeight(ctx, userID, weightID)
	if err != nil {
		return nil, err
	}

	if input.WeightKg != nil {
		weight.WeightKg = *input.WeightKg
	}
	if input.Date != nil {
		weight.Date = *input.Date
	}

	if err := srv.weightRepo.Update(ctx, weight); err != nil {
		if errors.Is(err, repository.ErrWeightNotFound) {
			return nil, domainerrors.ErrWeightNotFound.WrapMessage("weight entry not found")
		}

		srv.log(ctx).Error("Failed to update weight entry", slog.Int64("weightID", weightID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update weight entry")
	}

	return weight, nil
}

func (srv *profileService) DeleteWeight(ctx context.Context, userID, weightID int64) error {
	if err := srv.weightRepo.DeleteByIDAndUser(ctx, weightID, userID); err != nil {
		if errors.Is(err, repository.ErrWeightNotFound) {
			return domainerrors.ErrWeightNotFound.WrapMessage("weight entry not found")
		}

		srv.log(ctx).Error("Failed to delete weight entry", slog.Int64("weightID", weightID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete weight entry")
	}

	srv.log(ctx).Debug("Weight entry deleted", slog.Int64("userID", userID), slog.Int64("weightID", weightID))

	return nil
}

// Dashboard combines the all-time workout and nutrition aggregates.
func (srv *profileService) Dashboard(ctx context.Context, userID int64) (*entity.DashboardStats, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for dashboard")
	}

	totalWorkouts, totalBurned, err := srv.workoutRepo.StatsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate workout stats", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate workout stats")
	}

	totalConsumed, err := srv.mealRepo.SumCaloriesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to sum consumed calories", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sum consumed calories")
	}

	return &entity.DashboardStats{
		Username:              user.Username,
		TotalWorkouts:         totalWorkouts,
		TotalCaloriesBurned:   totalBurned,
		TotalCaloriesConsumed: totalConsumed,
	}, nil
}
