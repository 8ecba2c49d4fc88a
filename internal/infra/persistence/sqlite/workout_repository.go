package sqlite

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the domain.WorkoutRepository interface using GORM.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		return errors.Wrap(err, "failed to create workout")
	}

	workout.ID = workoutM.ID

	return nil
}

// FindByIDAndUser scopes the lookup to the owner, so a foreign workout is
// indistinguishable from a missing one.
func (repo *workoutRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Workout, error) {
	var workoutM model.WorkoutModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workoutM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout")
	}

	return toWorkoutDomain(&workoutM), nil
}

// ListByUser returns the user's workouts newest first, ties broken by id
// so the order is stable. An empty bound leaves that side open.
func (repo *workoutRepository) ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]*entity.Workout, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if dateRange.Start != "" {
		query = query.Where("date >= ?", dateRange.Start)
	}
	if dateRange.End != "" {
		query = query.Where("date <= ?", dateRange.End)
	}

	var workoutMs []model.WorkoutModel
	if err := query.Order("date DESC, id DESC").Find(&workoutMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	workouts := make([]*entity.Workout, 0, len(workoutMs))
	for i := range workoutMs {
		workouts = append(workouts, toWorkoutDomain(&workoutMs[i]))
	}

	return workouts, nil
}

func (repo *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("id = ? AND user_id = ?", workout.ID, workout.UserID).
		Updates(map[string]any{
			"workout_name":     workout.WorkoutName,
			"duration_minutes": workout.DurationMinutes,
			"calories_burned":  workout.CaloriesBurned,
			"date":             workout.Date,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update workout")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

func (repo *workoutRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WorkoutModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete workout")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// SumCaloriesSince totals calories burned on or after the given date.
func (repo *workoutRepository) SumCaloriesSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var total int
	err := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Select("COALESCE(SUM(calories_burned), 0)").
		Where("user_id = ? AND date >= ?", userID, since.Format("2006-01-02")).
		Scan(&total).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to sum workout calories")
	}

	return total, nil
}

// CountByWeek groups the user's workouts into ISO-like year-week buckets.
func (repo *workoutRepository) CountByWeek(ctx context.Context, userID int64) ([]*entity.WeeklyFrequency, error) {
	var rows []*entity.WeeklyFrequency
	err := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Select("strftime('%Y-W%W', date) AS week, COUNT(*) AS workout_count").
		Where("user_id = ?", userID).
		Group("week").
		Order("week ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to count workouts by week")
	}

	return rows, nil
}

// StatsByUser returns the all-time workout count and calories burned in a
// single aggregate query.
func (repo *workoutRepository) StatsByUser(ctx context.Context, userID int64) (int, int, error) {
	var row struct {
		TotalWorkouts int
		TotalCalories int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Select("COUNT(*) AS total_workouts, COALESCE(SUM(calories_burned), 0) AS total_calories").
		Where("user_id = ?", userID).
		Scan(&row).Error

	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate workout stats")
	}

	return row.TotalWorkouts, row.TotalCalories, nil
}

// --- Mapper Functions ---

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:              data.ID,
		UserID:          data.UserID,
		WorkoutName:     data.WorkoutName,
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Date:            data.Date,
	}
}

func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:              data.ID,
		UserID:          data.UserID,
		WorkoutName:     data.WorkoutName,
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Date:            data.Date,
	}
}
