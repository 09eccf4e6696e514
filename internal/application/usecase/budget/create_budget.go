package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation. Either an
// explicit date range or a repetition type must be present; the repetition
// type wins when both are set.
type CreateBudgetInput struct {
	UserID         uuid.UUID
	Name           string
	Limit          string
	Description    *string
	RepetitionType *entity.RepetitionType
	StartDate      *time.Time
	EndDate        *time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *BudgetOutput
}

// CreateBudgetUseCase creates a budget, either standalone with explicit dates
// or materialized from a freshly created recurring config. Config creation,
// period computation and budget creation share one atomic unit of work.
type CreateBudgetUseCase struct {
	uow adapter.UnitOfWork
	now func() time.Time
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(uow adapter.UnitOfWork) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		uow: uow,
		now: time.Now,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	limit, err := decimal.NewFromString(input.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domainerror.ErrInvalidBudgetLimit, input.Limit)
	}

	var created *entity.Budget
	if input.RepetitionType != nil {
		err = uc.uow.Do(ctx, func(r *adapter.Repositories) error {
			created, err = uc.materialize(ctx, r, input, limit)
			return err
		})
	} else {
		if input.StartDate == nil || input.EndDate == nil {
			return nil, domainerror.ErrInvalidBudgetPeriod
		}
		err = uc.uow.Do(ctx, func(r *adapter.Repositories) error {
			created = entity.NewBudget(input.UserID, nil, input.Name, *input.StartDate, *input.EndDate, limit, input.Description)
			if err := r.Budgets.Create(ctx, created); err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{
		Budget: toBudgetOutput(created),
	}, nil
}

// materialize creates the recurring config, computes the active period and
// creates the linked budget instance.
func (uc *CreateBudgetUseCase) materialize(
	ctx context.Context,
	r *adapter.Repositories,
	input CreateBudgetInput,
	limit decimal.Decimal,
) (*entity.Budget, error) {
	if !input.RepetitionType.Valid() {
		return nil, domainerror.ErrInvalidRepetitionType
	}

	config := entity.NewBudgetConfig(input.UserID, input.Name, limit, input.Description, *input.RepetitionType)
	if err := r.BudgetConfigs.Create(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create budget config: %w", err)
	}

	start, end, err := Period(config.RepetitionType, uc.now())
	if err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, &config.ID, input.Name, start, end, limit, input.Description)
	if err := r.Budgets.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	config.LastCreate = &start
	config.UpdatedAt = time.Now().UTC()
	if err := r.BudgetConfigs.Update(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to stamp budget config: %w", err)
	}

	return budget, nil
}
