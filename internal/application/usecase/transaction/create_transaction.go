package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	WalletID      uuid.UUID
	BudgetID      *uuid.UUID
	Amount        string
	Description   *string
	FlowDirection entity.FlowDirection
	IssuedAt      time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase records a transaction and applies its effect to
// the referenced wallet and budget atomically.
type CreateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(uow adapter.UnitOfWork) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		uow: uow,
	}
}

// Execute performs the transaction creation. On any failure no balance, no
// accrual and no transaction row is persisted.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.FlowDirection.Valid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidFlowDirection,
			"flow direction must be 'income' or 'outcome'",
			domainerror.ErrInvalidFlowDirection,
		)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	var created *entity.Transaction
	err = uc.uow.Do(ctx, func(r *adapter.Repositories) error {
		wallet, err := r.Wallets.FindByIDAndUser(ctx, input.WalletID, input.UserID)
		if err != nil {
			return err
		}

		var budget *entity.Budget
		if input.BudgetID != nil {
			budget, err = r.Budgets.FindByIDAndUser(ctx, *input.BudgetID, input.UserID)
			if err != nil {
				return err
			}
		}

		category, err := r.Categories.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
		if err != nil {
			return err
		}

		transaction := entity.NewTransaction(
			input.UserID,
			category.ID,
			input.BudgetID,
			wallet.ID,
			amount,
			input.Description,
			input.FlowDirection,
			input.IssuedAt,
		)
		if err := r.Transactions.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		wallet.Apply(transaction.Amount, transaction.FlowDirection)
		wallet.UpdatedAt = time.Now().UTC()
		if err := r.Wallets.Update(ctx, wallet); err != nil {
			return fmt.Errorf("failed to apply wallet balance: %w", err)
		}

		if budget != nil && transaction.AffectsBudget() {
			budget.Apply(transaction.Amount)
			budget.UpdatedAt = time.Now().UTC()
			if err := r.Budgets.Update(ctx, budget); err != nil {
				return fmt.Errorf("failed to apply budget amount: %w", err)
			}
		}

		created = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(created),
	}, nil
}
