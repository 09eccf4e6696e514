package budgetconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// BudgetConfigOutput represents a budget config returned by a use case.
type BudgetConfigOutput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Limit          decimal.Decimal
	Description    *string
	RepetitionType entity.RepetitionType
	LastCreate     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toBudgetConfigOutput(config *entity.BudgetConfig) *BudgetConfigOutput {
	return &BudgetConfigOutput{
		ID:             config.ID,
		UserID:         config.UserID,
		Name:           config.Name,
		Limit:          config.Limit,
		Description:    config.Description,
		RepetitionType: config.RepetitionType,
		LastCreate:     config.LastCreate,
		CreatedAt:      config.CreatedAt,
		UpdatedAt:      config.UpdatedAt,
	}
}
