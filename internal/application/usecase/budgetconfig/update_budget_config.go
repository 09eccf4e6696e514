package budgetconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/application/adapter"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// UpdateBudgetConfigInput represents the input for budget config update.
type UpdateBudgetConfigInput struct {
	BudgetConfigID uuid.UUID
	UserID         uuid.UUID
	Name           string
	Limit          string
	Description    *string
}

// UpdateBudgetConfigOutput represents the output of budget config update.
type UpdateBudgetConfigOutput struct {
	BudgetConfig *BudgetConfigOutput
}

// UpdateBudgetConfigUseCase updates the descriptive fields of a budget config.
// The repetition type is fixed at creation and already materialized budgets
// are never touched; the new limit only affects future materializations.
type UpdateBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
}

// NewUpdateBudgetConfigUseCase creates a new UpdateBudgetConfigUseCase instance.
func NewUpdateBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository) *UpdateBudgetConfigUseCase {
	return &UpdateBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
	}
}

// Execute performs the budget config update.
func (uc *UpdateBudgetConfigUseCase) Execute(ctx context.Context, input UpdateBudgetConfigInput) (*UpdateBudgetConfigOutput, error) {
	limit, err := decimal.NewFromString(input.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domainerror.ErrInvalidBudgetLimit, input.Limit)
	}

	config, err := uc.budgetConfigRepo.FindByIDAndUser(ctx, input.BudgetConfigID, input.UserID)
	if err != nil {
		return nil, err
	}

	config.Name = input.Name
	config.Limit = limit
	config.Description = input.Description
	config.UpdatedAt = time.Now().UTC()

	if err := uc.budgetConfigRepo.Update(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to update budget config: %w", err)
	}

	return &UpdateBudgetConfigOutput{
		BudgetConfig: toBudgetConfigOutput(config),
	}, nil
}
