package sqlite

import (
	"context"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// weightRepository implements the domain.WeightRepository interface using GORM.
type weightRepository struct {
	db *gorm.DB
}

// NewWeightRepository is the constructor for weightRepository.
func NewWeightRepository(db *gorm.DB) repository.WeightRepository {
	return &weightRepository{db: db}
}

func (repo *weightRepository) Create(ctx context.Context, weight *entity.WeightEntry) error {
	weightM := fromWeightDomain(weight)

	if err := repo.db.WithContext(ctx).Create(weightM).Error; err != nil {
		return errors.Wrap(err, "failed to create weight entry")
	}

	weight.ID = weightM.ID
	weight.CreatedAt = weightM.CreatedAt

	return nil
}

func (repo *weightRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.WeightEntry, error) {
	var weightM model.WeightEntryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&weightM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeightNotFound
		}

		return nil, errors.Wrap(err, "failed to find weight entry")
	}

	return toWeightDomain(&weightM), nil
}

// ListByUser returns weight entries oldest first, which is the order
// trend charts consume.
func (repo *weightRepository) ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]*entity.WeightEntry, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if dateRange.Start != "" {
		query = query.Where("date >= ?", dateRange.Start)
	}
	if dateRange.End != "" {
		query = query.Where("date <= ?", dateRange.End)
	}

	var weightMs []model.WeightEntryModel
	if err := query.Order("date ASC, id ASC").Find(&weightMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list weight entries")
	}

	weights := make([]*entity.WeightEntry, 0, len(weightMs))
	for i := range weightMs {
		weights = append(weights, toWeightDomain(&weightMs[i]))
	}

	return weights, nil
}

func (repo *weightRepository) Update(ctx context.Context, weight *entity.WeightEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WeightEntryModel{}).
		Where("id = ? AND user_id = ?", weight.ID, weight.UserID).
		Updates(map[string]any{
			"weight_kg": weight.WeightKg,
			"date":      weight.Date,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update weight entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWeightNotFound
	}

	return nil
}

func (repo *weightRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WeightEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete weight entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWeightNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWeightDomain(data *model.WeightEntryModel) *entity.WeightEntry {
	if data == nil {
		return nil
	}

	return &entity.WeightEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		WeightKg:  data.WeightKg,
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
	}
}

func fromWeightDomain(data *entity.WeightEntry) *model.WeightEntryModel {
	if data == nil {
		return nil
	}

	return &model.WeightEntryModel{
		ID:       data.ID,
		UserID:   data.UserID,
		WeightKg: data.WeightKg,
		Date:     data.Date,
	}
}
