package budgetconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// ListBudgetConfigsInput represents the input for budget config listing.
type ListBudgetConfigsInput struct {
	UserID uuid.UUID
}

// ListBudgetConfigsOutput represents the output of budget config listing.
type ListBudgetConfigsOutput struct {
	BudgetConfigs []*BudgetConfigOutput
}

// ListBudgetConfigsUseCase lists the active budget configs of a user.
type ListBudgetConfigsUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
}

// NewListBudgetConfigsUseCase creates a new ListBudgetConfigsUseCase instance.
func NewListBudgetConfigsUseCase(budgetConfigRepo adapter.BudgetConfigRepository) *ListBudgetConfigsUseCase {
	return &ListBudgetConfigsUseCase{
		budgetConfigRepo: budgetConfigRepo,
	}
}

// Execute performs the budget config listing.
func (uc *ListBudgetConfigsUseCase) Execute(ctx context.Context, input ListBudgetConfigsInput) (*ListBudgetConfigsOutput, error) {
	configs, err := uc.budgetConfigRepo.FindAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget configs: %w", err)
	}

	outputs := make([]*BudgetConfigOutput, 0, len(configs))
	for _, config := range configs {
		outputs = append(outputs, toBudgetConfigOutput(config))
	}

	return &ListBudgetConfigsOutput{
		BudgetConfigs: outputs,
	}, nil
}
