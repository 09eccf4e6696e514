// Package transaction contains the ledger engine use cases: every mutation of
// the transaction log is mirrored onto the referenced wallet and, for outcome
// transactions, the referenced budget, inside one atomic unit of work.
package transaction

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

// TransactionOutput represents a transaction returned by a use case.
type TransactionOutput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	BudgetID      *uuid.UUID
	WalletID      uuid.UUID
	Amount        decimal.Decimal
	Description   *string
	FlowDirection entity.FlowDirection
	IssuedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		CategoryID:    transaction.CategoryID,
		BudgetID:      transaction.BudgetID,
		WalletID:      transaction.WalletID,
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		FlowDirection: transaction.FlowDirection,
		IssuedAt:      transaction.IssuedAt,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}

// parseAmount parses the textual amount into an exact decimal.
func parseAmount(amount string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount %q is not a valid decimal", amount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return parsed, nil
}

// revertEffect undoes a transaction's numeric effect on its wallet and, when
// linked and outgoing, its budget. It must be called with the transaction's
// pre-image: the wallet, budget, amount and direction as currently stored,
// before any field of the transaction is mutated.
func revertEffect(ctx context.Context, r *adapter.Repositories, transaction *entity.Transaction) error {
	wallet, err := r.Wallets.FindByIDAndUser(ctx, transaction.WalletID, transaction.UserID)
	if err != nil {
		return err
	}

	wallet.Revert(transaction.Amount, transaction.FlowDirection)
	wallet.UpdatedAt = time.Now().UTC()
	if err := r.Wallets.Update(ctx, wallet); err != nil {
		return fmt.Errorf("failed to revert wallet balance: %w", err)
	}

	if transaction.AffectsBudget() {
		budget, err := r.Budgets.FindByIDAndUser(ctx, *transaction.BudgetID, transaction.UserID)
		if err != nil {
			return err
		}

		budget.Revert(transaction.Amount)
		budget.UpdatedAt = time.Now().UTC()
		if err := r.Budgets.Update(ctx, budget); err != nil {
			return fmt.Errorf("failed to revert budget amount: %w", err)
		}
	}

	return nil
}
