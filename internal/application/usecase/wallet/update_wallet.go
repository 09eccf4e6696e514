package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// UpdateWalletInput represents the input for wallet update. The balance is
// deliberately absent: it only moves through the ledger engine.
type UpdateWalletInput struct {
	WalletID    uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
}

// UpdateWalletOutput represents the output of wallet update.
type UpdateWalletOutput struct {
	Wallet *WalletOutput
}

// UpdateWalletUseCase updates a wallet's descriptive fields.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByIDAndUser(ctx, input.WalletID, input.UserID)
	if err != nil {
		return nil, err
	}

	wallet.Name = input.Name
	wallet.Description = input.Description
	wallet.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{
		Wallet: toWalletOutput(wallet),
	}, nil
}
