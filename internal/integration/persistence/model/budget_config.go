package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// BudgetConfigModel represents the budget_configs table in the database.
type BudgetConfigModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Limit          decimal.Decimal `gorm:"column:amount_limit;type:decimal(15,2);not null"`
	Description    *string         `gorm:"type:text"`
	RepetitionType string          `gorm:"type:varchar(10);not null"`
	LastCreate     *time.Time      `gorm:"type:date"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetConfigModel.
func (BudgetConfigModel) TableName() string {
	return "budget_configs"
}

// ToEntity converts a BudgetConfigModel to a domain BudgetConfig entity.
func (m *BudgetConfigModel) ToEntity() *entity.BudgetConfig {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BudgetConfig{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Limit:          m.Limit,
		Description:    m.Description,
		RepetitionType: entity.RepetitionType(m.RepetitionType),
		LastCreate:     m.LastCreate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// BudgetConfigFromEntity creates a BudgetConfigModel from a domain BudgetConfig entity.
func BudgetConfigFromEntity(config *entity.BudgetConfig) *BudgetConfigModel {
	var deletedAt gorm.DeletedAt
	if config.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *config.DeletedAt, Valid: true}
	}

	return &BudgetConfigModel{
		ID:             config.ID,
		UserID:         config.UserID,
		Name:           config.Name,
		Limit:          config.Limit,
		Description:    config.Description,
		RepetitionType: string(config.RepetitionType),
		LastCreate:     config.LastCreate,
		CreatedAt:      config.CreatedAt,
		UpdatedAt:      config.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
