package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/application/adapter"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. CurrentAmount is
// never updatable; it only moves through the ledger engine.
type UpdateBudgetInput struct {
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	Name        string
	Limit       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *BudgetOutput
}

// UpdateBudgetUseCase updates a budget's descriptive fields and date range.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	limit, err := decimal.NewFromString(input.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domainerror.ErrInvalidBudgetLimit, input.Limit)
	}

	budget, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	budget.Name = input.Name
	budget.Limit = limit
	budget.Description = input.Description
	budget.StartDate = input.StartDate
	budget.EndDate = input.EndDate
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: toBudgetOutput(budget),
	}, nil
}
