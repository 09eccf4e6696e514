package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
// Every lookup is scoped to the acting user and excludes soft-deleted rows.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByIDAndUser retrieves an active wallet owned by the given user.
	// Returns domainerror.ErrWalletNotFound if it is absent, foreign or deleted.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Wallet, error)

	// FindAllByUser retrieves all active wallets for a user, ordered by name.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// Update persists an existing wallet.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete soft-deletes a wallet. Its balance is frozen at deletion time.
	Delete(ctx context.Context, id uuid.UUID) error
}
