package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepetitionType represents the recurrence unit of a budget config.
type RepetitionType string

const (
	RepetitionTypeDaily   RepetitionType = "daily"
	RepetitionTypeWeekly  RepetitionType = "weekly"
	RepetitionTypeMonthly RepetitionType = "monthly"
	RepetitionTypeYearly  RepetitionType = "yearly"
)

// Valid reports whether the repetition type is one of the known variants.
func (r RepetitionType) Valid() bool {
	switch r {
	case RepetitionTypeDaily, RepetitionTypeWeekly, RepetitionTypeMonthly, RepetitionTypeYearly:
		return true
	}
	return false
}

// BudgetConfig is a recurring budget template. It is purely descriptive and
// never accumulates spend itself; periodic Budget instances are materialized
// from it.
type BudgetConfig struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Limit          decimal.Decimal
	Description    *string
	RepetitionType RepetitionType
	LastCreate     *time.Time // Start date of the most recently materialized budget
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewBudgetConfig creates a new BudgetConfig entity.
func NewBudgetConfig(
	userID uuid.UUID,
	name string,
	limit decimal.Decimal,
	description *string,
	repetitionType RepetitionType,
) *BudgetConfig {
	now := time.Now().UTC()

	return &BudgetConfig{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Limit:          limit,
		Description:    description,
		RepetitionType: repetitionType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
