package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// BudgetOutput represents a budget returned by a use case.
type BudgetOutput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	BudgetConfigID *uuid.UUID
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Limit          decimal.Decimal
	CurrentAmount  decimal.Decimal
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toBudgetOutput(budget *entity.Budget) *BudgetOutput {
	return &BudgetOutput{
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
	}
}
