// Package wallet contains wallet-related use cases. Balances are never
// written here; they only move through the ledger engine.
package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// WalletOutput represents a wallet returned by a use case.
type WalletOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Balance     decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toWalletOutput(wallet *entity.Wallet) *WalletOutput {
	return &WalletOutput{
		ID:          wallet.ID,
		UserID:      wallet.UserID,
		Name:        wallet.Name,
		Balance:     wallet.Balance,
		Description: wallet.Description,
		CreatedAt:   wallet.CreatedAt,
		UpdatedAt:   wallet.UpdatedAt,
	}
}
