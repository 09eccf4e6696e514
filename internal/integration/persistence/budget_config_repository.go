package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/persistence/model"
)

// budgetConfigRepository implements the adapter.BudgetConfigRepository interface.
type budgetConfigRepository struct {
	db *gorm.DB
}

// NewBudgetConfigRepository creates a new budget config repository instance.
func NewBudgetConfigRepository(db *gorm.DB) adapter.BudgetConfigRepository {
	return &budgetConfigRepository{
		db: db,
	}
}

// Create creates a new budget config in the database.
func (r *budgetConfigRepository) Create(ctx context.Context, config *entity.BudgetConfig) error {
	configModel := model.BudgetConfigFromEntity(config)
	result := r.db.WithContext(ctx).Create(configModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves an active budget config owned by the given user.
func (r *budgetConfigRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.BudgetConfig, error) {
	var configModel model.BudgetConfigModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&configModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetConfigNotFound
		}
		return nil, result.Error
	}
	return configModel.ToEntity(), nil
}

// FindAllByUser retrieves all active budget configs for a user.
func (r *budgetConfigRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetConfig, error) {
	var configModels []model.BudgetConfigModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&configModels)
	if result.Error != nil {
		return nil, result.Error
	}

	configs := make([]*entity.BudgetConfig, len(configModels))
	for i, cm := range configModels {
		configs[i] = cm.ToEntity()
	}
	return configs, nil
}

// Update updates an existing budget config in the database.
func (r *budgetConfigRepository) Update(ctx context.Context, config *entity.BudgetConfig) error {
	configModel := model.BudgetConfigFromEntity(config)
	result := r.db.WithContext(ctx).Save(configModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a budget config.
func (r *budgetConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetConfigModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
