// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Repositories bundles the repository set bound to a single data source:
// either the base connection or one atomic unit of work.
type Repositories struct {
	Wallets       WalletRepository
	Categories    CategoryRepository
	Budgets       BudgetRepository
	BudgetConfigs BudgetConfigRepository
	Transactions  TransactionRepository
}

// UnitOfWork executes a function against a transactional repository set.
// Either every write performed inside fn becomes visible, or none do. Every
// ledger operation runs inside exactly one unit of work.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r *Repositories) error) error
}
