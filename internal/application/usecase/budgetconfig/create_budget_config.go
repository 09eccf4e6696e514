package budgetconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// CreateBudgetConfigInput represents the input for budget config creation.
type CreateBudgetConfigInput struct {
	UserID         uuid.UUID
	Name           string
	Limit          string
	Description    *string
	RepetitionType entity.RepetitionType
}

// CreateBudgetConfigOutput represents the output of budget config creation.
type CreateBudgetConfigOutput struct {
	BudgetConfig *BudgetConfigOutput
}

// CreateBudgetConfigUseCase creates a standalone recurring budget template.
// No budget instance is materialized here; that happens through the budget
// creation flow.
type CreateBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
}

// NewCreateBudgetConfigUseCase creates a new CreateBudgetConfigUseCase instance.
func NewCreateBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository) *CreateBudgetConfigUseCase {
	return &CreateBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
	}
}

// Execute performs the budget config creation.
func (uc *CreateBudgetConfigUseCase) Execute(ctx context.Context, input CreateBudgetConfigInput) (*CreateBudgetConfigOutput, error) {
	if !input.RepetitionType.Valid() {
		return nil, domainerror.ErrInvalidRepetitionType
	}

	limit, err := decimal.NewFromString(input.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domainerror.ErrInvalidBudgetLimit, input.Limit)
	}

	config := entity.NewBudgetConfig(input.UserID, input.Name, limit, input.Description, input.RepetitionType)
	if err := uc.budgetConfigRepo.Create(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create budget config: %w", err)
	}

	return &CreateBudgetConfigOutput{
		BudgetConfig: toBudgetConfigOutput(config),
	}, nil
}
