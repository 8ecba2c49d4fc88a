package sqlite

import (
	"context"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealRepository implements the domain.MealRepository interface using GORM.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		return errors.Wrap(err, "failed to create meal")
	}

	meal.ID = mealM.ID

	return nil
}

func (repo *mealRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Meal, error) {
	var mealM model.MealModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&mealM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}

	return toMealDomain(&mealM), nil
}

// ListByUser returns the user's meals newest first with a stable id tiebreak.
func (repo *mealRepository) ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]*entity.Meal, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if dateRange.Start != "" {
		query = query.Where("date >= ?", dateRange.Start)
	}
	if dateRange.End != "" {
		query = query.Where("date <= ?", dateRange.End)
	}

	var mealMs []model.MealModel
	if err := query.Order("date DESC, id DESC").Find(&mealMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]*entity.Meal, 0, len(mealMs))
	for i := range mealMs {
		meals = append(meals, toMealDomain(&mealMs[i]))
	}

	return meals, nil
}

func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ? AND user_id = ?", meal.ID, meal.UserID).
		Updates(map[string]any{
			"meal_name": meal.MealName,
			"calories":  meal.Calories,
			"protein":   meal.Protein,
			"carbs":     meal.Carbs,
			"fats":      meal.Fats,
			"date":      meal.Date,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

func (repo *mealRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// MacrosByDate totals calories and macronutrients per calendar day,
// oldest day first.
func (repo *mealRepository) MacrosByDate(ctx context.Context, userID int64, dateRange repository.DateRange) ([]*entity.MacroTotals, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Select("date, COALESCE(SUM(calories), 0) AS total_calories, COALESCE(SUM(protein), 0) AS total_protein, COALESCE(SUM(carbs), 0) AS total_carbs, COALESCE(SUM(fats), 0) AS total_fats").
		Where("user_id = ?", userID)

	if dateRange.Start != "" {
		query = query.Where("date >= ?", dateRange.Start)
	}
	if dateRange.End != "" {
		query = query.Where("date <= ?", dateRange.End)
	}

	var rows []*entity.MacroTotals
	if err := query.Group("date").Order("date ASC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate macros")
	}

	return rows, nil
}

// SumCaloriesByUser totals all calories the user has logged.
func (repo *mealRepository) SumCaloriesByUser(ctx context.Context, userID int64) (int, error) {
	var total int
	err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Select("COALESCE(SUM(calories), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to sum meal calories")
	}

	return total, nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID:       data.ID,
		UserID:   data.UserID,
		MealName: data.MealName,
		Calories: data.Calories,
		Protein:  data.Protein,
		Carbs:    data.Carbs,
		Fats:     data.Fats,
		Date:     data.Date,
	}
}

func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:       data.ID,
		UserID:   data.UserID,
		MealName: data.MealName,
		Calories: data.Calories,
		Protein:  data.Protein,
		Carbs:    data.Carbs,
		Fats:     data.Fats,
		Date:     data.Date,
	}
}
