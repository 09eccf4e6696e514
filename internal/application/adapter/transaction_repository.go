package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves an active transaction owned by the given user.
	// Returns domainerror.ErrTransactionNotFound if it is absent, foreign or deleted.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error)

	// FindAllByUser retrieves all active transactions for a user, ordered by
	// issued_at and created_at, newest first.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update persists an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction. The row is retained for audit and is
	// excluded from every future lookup and invariant sum.
	Delete(ctx context.Context, id uuid.UUID) error
}
