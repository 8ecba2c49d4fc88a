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

// nutritionService implements the NutritionUsecase interface.
type nutritionService struct {
	mealRepo repository.MealRepository
	logger   *slog.Logger
}

// NutritionServiceParams holds dependencies for nutritionService, injected by Fx.
type NutritionServiceParams struct {
	fx.In

	MealRepo repository.MealRepository
	Logger   *slog.Logger
}

// NewNutritionService is the constructor for nutritionService.
func NewNutritionService(params NutritionServiceParams) usecase.NutritionUsecase {
	return &nutritionService{
		mealRepo: params.MealRepo,
		logger:   params.Logger,
	}
}

func (srv *nutritionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *nutritionService) Create(ctx context.Context, userID int64, input *usecase.CreateMealInput) (*entity.Meal, error) {
	meal := &entity.Meal{
		UserID:   userID,
		MealName: input.MealName,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
		Date:     input.Date,
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		srv.log(ctx).Error("Failed to create meal", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create meal")
	}

	srv.log(ctx).Debug("Meal created", slog.Int64("userID", userID), slog.Int64("mealID", meal.ID))

	return meal, nil
}

func (srv *nutritionService) List(ctx context.Context, userID int64, input *usecase.ListRangeInput) ([]*entity.Meal, error) {
	meals, err := srv.mealRepo.ListByUser(ctx, userID, repository.DateRange{
		Start: input.StartDate,
		End:   input.EndDate,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list meals", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list meals")
	}

	return meals, nil
}

func (srv *nutritionService) Get(ctx context.Context, userID, mealID int64) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByIDAndUser(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound.WrapMessage("meal not found")
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}

	return meal, nil
}

// Update applies the non-nil fields of the input to the stored meal.
func (srv *nutritionService) Update(ctx context.Context, userID, mealID int64, input *usecase.UpdateMealInput) (*entity.Meal, error) {
	meal, err := srv.Get(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	if input.MealName != nil {
		meal.MealName = *input.MealName
	}
	if input.Calories != nil {
		meal.Calories = *input.Calories
	}
	if input.Protein != nil {
		meal.Protein = *input.Protein
	}
	if input.Carbs != nil {
		meal.Carbs = *input.Carbs
	}
	if input.Fats != nil {
		meal.Fats = *input.Fats
	}
	if input.Date != nil {
		meal.Date = *input.Date
	}

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound.WrapMessage("meal not found")
		}

		srv.log(ctx).Error("Failed to update meal", slog.Int64("mealID", mealID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update meal")
	}

	return meal, nil
}

func (srv *nutritionService) Delete(ctx context.Context, userID, mealID int64) error {
	if err := srv.mealRepo.DeleteByIDAndUser(ctx, mealID, userID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return domainerrors.ErrMealNotFound.WrapMessage("meal not found")
		}

		srv.log(ctx).Error("Failed to delete meal", slog.Int64("mealID", mealID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete meal")
	}

	srv.log(ctx).Debug("Meal deleted", slog.Int64("userID", userID), slog.Int64("mealID", mealID))

	return nil
}

// Macros totals calories and macronutrients per day within the optional range.
func (srv *nutritionService) Macros(ctx context.Context, userID int64, input *usecase.ListRangeInput) ([]*entity.MacroTotals, error) {
	rows, err := srv.mealRepo.MacrosByDate(ctx, userID, repository.DateRange{
		Start: input.StartDate,
		End:   input.EndDate,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate macros", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate macros")
	}

	return rows, nil
}
