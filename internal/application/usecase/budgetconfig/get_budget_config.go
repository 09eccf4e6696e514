package budgetconfig

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// GetBudgetConfigInput represents the input for budget config retrieval.
type GetBudgetConfigInput struct {
	BudgetConfigID uuid.UUID
	UserID         uuid.UUID
}

// GetBudgetConfigOutput represents the output of budget config retrieval.
type GetBudgetConfigOutput struct {
	BudgetConfig *BudgetConfigOutput
}

// GetBudgetConfigUseCase retrieves a single budget config owned by the user.
type GetBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
}

// NewGetBudgetConfigUseCase creates a new GetBudgetConfigUseCase instance.
func NewGetBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository) *GetBudgetConfigUseCase {
	return &GetBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
	}
}

// Execute performs the budget config retrieval.
func (uc *GetBudgetConfigUseCase) Execute(ctx context.Context, input GetBudgetConfigInput) (*GetBudgetConfigOutput, error) {
	config, err := uc.budgetConfigRepo.FindByIDAndUser(ctx, input.BudgetConfigID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetBudgetConfigOutput{
		BudgetConfig: toBudgetConfigOutput(config),
	}, nil
}
