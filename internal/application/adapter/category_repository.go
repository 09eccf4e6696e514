package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves an active category owned by the given user.
	// Returns domainerror.ErrCategoryNotFound if it is absent, foreign or deleted.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Category, error)

	// FindAllByUser retrieves all active categories for a user, ordered by name.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update persists an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category.
	Delete(ctx context.Context, id uuid.UUID) error
}
