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

// UpdateTransactionInput is a full replacement payload for a transaction.
// Every reference may differ from the stored one, including the wallet and
// the budget.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	WalletID      uuid.UUID
	BudgetID      *uuid.UUID
	Amount        string
	Description   *string
	FlowDirection entity.FlowDirection
	IssuedAt      time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase rewrites a transaction under the revert/apply
// protocol: the stored effect is undone against the pre-image, the fields are
// replaced, and the new effect is applied against the post-image, all inside
// one atomic unit of work.
type UpdateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(uow adapter.UnitOfWork) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		uow: uow,
	}
}

// Execute performs the transaction update. On any failure every touched
// wallet, budget and the transaction itself keep their pre-call values.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
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

	var updated *entity.Transaction
	err = uc.uow.Do(ctx, func(r *adapter.Repositories) error {
		transaction, err := r.Transactions.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
		if err != nil {
			return err
		}

		// Revert against the pre-image before any field is mutated.
		if err := revertEffect(ctx, r, transaction); err != nil {
			return err
		}

		// Resolve the new references. The wallet read here sees the balance
		// the revert above just persisted, so a same-wallet update recomputes
		// from the correct base.
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

		transaction.CategoryID = category.ID
		transaction.BudgetID = input.BudgetID
		transaction.WalletID = wallet.ID
		transaction.Amount = amount
		transaction.Description = input.Description
		transaction.FlowDirection = input.FlowDirection
		transaction.IssuedAt = input.IssuedAt
		transaction.UpdatedAt = time.Now().UTC()

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

		if err := r.Transactions.Update(ctx, transaction); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		updated = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(updated),
	}, nil
}
