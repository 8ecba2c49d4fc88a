package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// weeklyCaloriesWindow is the trailing window the weekly-calories summary covers.
const weeklyCaloriesWindow = 7 * 24 * time.Hour

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
	now         func() time.Time
}

// WorkoutServiceParams holds dependencies for workoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *workoutService) Create(ctx context.Context, userID int64, input *usecase.CreateWorkoutInput) (*entity.Workout, error) {
	workout := &entity.Workout{
		UserID:          userID,
		WorkoutName:     input.WorkoutName,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Date:            input.Date,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to create workout", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create workout")
	}

	srv.log(ctx).Debug("Workout created", slog.Int64("userID", userID), slog.Int64("workoutID", workout.ID))

	return workout, nil
}

func (srv *workoutService) List(ctx context.Context, userID int64, input *usecase.ListRangeInput) ([]*entity.Workout, error) {
	workouts, err := srv.workoutRepo.ListByUser(ctx, userID, repository.DateRange{
		Start: input.StartDate,
		End:   input.EndDate,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list workouts", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return workouts, nil
}

func (srv *workoutService) Get(ctx context.Context, userID, workoutID int64) (*entity.Workout, error) {
	workout, err := srv.workoutRepo.FindByIDAndUser(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrWorkoutNotFound.WrapMessage("workout not found")
		}

		return nil, errors.Wrap(err, "failed to find workout")
	}

	return workout, nil
}

// Update applies the non-nil fields of the input to the stored workout.
func (srv *workoutService) Update(ctx context.Context, userID, workoutID int64, input *usecase.UpdateWorkoutInput) (*entity.Workout, error) {
	workout, err := srv.Get(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if input.WorkoutName != nil {
		workout.WorkoutName = *input.WorkoutName
	}
	if input.DurationMinutes != nil {
		workout.DurationMinutes = *input.DurationMinutes
	}
	if input.CaloriesBurned != nil {
		workout.CaloriesBurned = *input.CaloriesBurned
	}
	if input.Date != nil {
		workout.Date = *input.Date
	}

	if err := srv.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrWorkoutNotFound.WrapMessage("workout not found")
		}

		srv.log(ctx).Error("Failed to update workout", slog.Int64("workoutID", workoutID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update workout")
	}

	return workout, nil
}

func (srv *workoutService) Delete(ctx context.Context, userID, workoutID int64) error {
	if err := srv.workoutRepo.DeleteByIDAndUser(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return domainerrors.ErrWorkoutNotFound.WrapMessage("workout not found")
		}

		srv.log(ctx).Error("Failed to delete workout", slog.Int64("workoutID", workoutID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete workout")
	}

	srv.log(ctx).Debug("Workout deleted", slog.Int64("userID", userID), slog.Int64("workoutID", workoutID))

	return nil
}

// WeeklyCalories totals calories burned over the trailing seven days.
func (srv *workoutService) WeeklyCalories(ctx context.Context, userID int64) (*usecase.WeeklyCaloriesOutput, error) {
	since := srv.now().Add(-weeklyCaloriesWindow)

	total, err := srv.workoutRepo.SumCaloriesSince(ctx, userID, since)
	if err != nil {
		srv.log(ctx).Error("Failed to sum weekly calories", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sum weekly calories")
	}

	return &usecase.WeeklyCaloriesOutput{
		TotalCalories: total,
		Since:         since.Format("2006-01-02"),
	}, nil
}

// WeeklyFrequency buckets the user's workout count per calendar week.
func (srv *workoutService) WeeklyFrequency(ctx context.Context, userID int64) ([]*entity.WeeklyFrequency, error) {
	weeks, err := srv.workoutRepo.CountByWeek(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to compute workout frequency", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute workout frequency")
	}

	return weeks, nil
}
