package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/leviis10/old-money/internal/application/adapter"
)

// NewRepositories builds the full repository set bound to the given
// connection. Used both for the base connection and, inside a unit of work,
// for the transaction handle.
func NewRepositories(db *gorm.DB) *adapter.Repositories {
	return &adapter.Repositories{
		Wallets:       NewWalletRepository(db),
		Categories:    NewCategoryRepository(db),
		Budgets:       NewBudgetRepository(db),
		BudgetConfigs: NewBudgetConfigRepository(db),
		Transactions:  NewTransactionRepository(db),
	}
}

// unitOfWork implements adapter.UnitOfWork over a gorm transaction.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work instance.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Do runs fn against a repository set bound to a single database transaction.
// A non-nil error from fn rolls back every write performed inside it.
func (u *unitOfWork) Do(ctx context.Context, fn func(r *adapter.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
