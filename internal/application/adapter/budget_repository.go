package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves an active budget owned by the given user.
	// Returns domainerror.ErrBudgetNotFound if it is absent, foreign or deleted.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Budget, error)

	// FindAllByUser retrieves all active budgets for a user, ordered by name.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update persists an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetConfigRepository defines the interface for budget config persistence operations.
type BudgetConfigRepository interface {
	// Create creates a new budget config in the database.
	Create(ctx context.Context, config *entity.BudgetConfig) error

	// FindByIDAndUser retrieves an active budget config owned by the given user.
	// Returns domainerror.ErrBudgetConfigNotFound if it is absent, foreign or deleted.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.BudgetConfig, error)

	// FindAllByUser retrieves all active budget configs for a user, ordered by name.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetConfig, error)

	// Update persists an existing budget config.
	Update(ctx context.Context, config *entity.BudgetConfig) error

	// Delete soft-deletes a budget config.
	Delete(ctx context.Context, id uuid.UUID) error
}
