package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// DeleteWalletOutput represents the output of wallet deletion.
type DeleteWalletOutput struct {
	Success bool
}

// DeleteWalletUseCase soft-deletes a wallet. The balance is frozen at the
// value it held at deletion and the wallet stops resolving for new
// transactions.
type DeleteWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(walletRepo adapter.WalletRepository) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByIDAndUser(ctx, input.WalletID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Delete(ctx, wallet.ID); err != nil {
		return nil, fmt.Errorf("failed to delete wallet: %w", err)
	}

	return &DeleteWalletOutput{
		Success: true,
	}, nil
}
