package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BudgetID      *uuid.UUID      `gorm:"type:uuid;index"`
	WalletID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   *string         `gorm:"type:text"`
	FlowDirection string          `gorm:"type:varchar(10);not null;index"`
	IssuedAt      time.Time       `gorm:"not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Budget   *BudgetModel   `gorm:"foreignKey:BudgetID;references:ID"`
	Wallet   *WalletModel   `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		BudgetID:      m.BudgetID,
		WalletID:      m.WalletID,
		Amount:        m.Amount,
		Description:   m.Description,
		FlowDirection: entity.FlowDirection(m.FlowDirection),
		IssuedAt:      m.IssuedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		CategoryID:    transaction.CategoryID,
		BudgetID:      transaction.BudgetID,
		WalletID:      transaction.WalletID,
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		FlowDirection: string(transaction.FlowDirection),
		IssuedAt:      transaction.IssuedAt,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
