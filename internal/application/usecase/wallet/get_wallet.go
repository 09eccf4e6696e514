package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// GetWalletInput represents the input for fetching one wallet.
type GetWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// GetWalletOutput represents the output of fetching one wallet.
type GetWalletOutput struct {
	Wallet *WalletOutput
}

// GetWalletUseCase fetches a single active wallet by id.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet lookup.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByIDAndUser(ctx, input.WalletID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetWalletOutput{
		Wallet: toWalletOutput(wallet),
	}, nil
}
