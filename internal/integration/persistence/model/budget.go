package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	BudgetConfigID *uuid.UUID      `gorm:"type:uuid;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	EndDate        time.Time       `gorm:"type:date;not null"`
	Limit          decimal.Decimal `gorm:"column:amount_limit;type:decimal(15,2);not null"`
	CurrentAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description    *string         `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User         *UserModel         `gorm:"foreignKey:UserID;references:ID"`
	BudgetConfig *BudgetConfigModel `gorm:"foreignKey:BudgetConfigID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:             m.ID,
		UserID:         m.UserID,
		BudgetConfigID: m.BudgetConfigID,
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Limit:          m.Limit,
		CurrentAmount:  m.CurrentAmount,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	return &BudgetModel{
		ID:             budget.ID,
		UserID:         budget.UserID,
		BudgetConfigID: budget.BudgetConfigID,
		Name:           budget.Name,
		StartDate:      budget.StartDate,
		EndDate:        budget.EndDate,
		Limit:          budget.Limit,
		CurrentAmount:  budget.CurrentAmount,
		Description:    budget.Description,
		CreatedAt:      budget.CreatedAt,
		UpdatedAt:      budget.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
