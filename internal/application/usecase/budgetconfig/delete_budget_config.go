package budgetconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// DeleteBudgetConfigInput represents the input for budget config deletion.
type DeleteBudgetConfigInput struct {
	BudgetConfigID uuid.UUID
	UserID         uuid.UUID
}

// DeleteBudgetConfigOutput represents the output of budget config deletion.
type DeleteBudgetConfigOutput struct {
	Success bool
}

// DeleteBudgetConfigUseCase soft-deletes a budget config. Budgets already
// materialized from it survive with their config reference intact.
type DeleteBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
}

// NewDeleteBudgetConfigUseCase creates a new DeleteBudgetConfigUseCase instance.
func NewDeleteBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository) *DeleteBudgetConfigUseCase {
	return &DeleteBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
	}
}

// Execute performs the budget config deletion.
func (uc *DeleteBudgetConfigUseCase) Execute(ctx context.Context, input DeleteBudgetConfigInput) (*DeleteBudgetConfigOutput, error) {
	config, err := uc.budgetConfigRepo.FindByIDAndUser(ctx, input.BudgetConfigID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.budgetConfigRepo.Delete(ctx, config.ID); err != nil {
		return nil, fmt.Errorf("failed to delete budget config: %w", err)
	}

	return &DeleteBudgetConfigOutput{
		Success: true,
	}, nil
}
