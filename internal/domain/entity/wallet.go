package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a named pool of money with a running balance. The balance
// is the net sum of all active transactions referencing the wallet and is only
// ever mutated through Apply and Revert.
type Wallet struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Balance     decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewWallet creates a new Wallet entity with a zero balance.
func NewWallet(userID uuid.UUID, name string, description *string) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Balance:     decimal.Zero,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply adds a transaction's signed effect to the balance. Income increases
// the balance, outcome decreases it. The balance may go negative.
func (w *Wallet) Apply(amount decimal.Decimal, direction FlowDirection) {
	switch direction {
	case FlowDirectionIncome:
		w.Balance = w.Balance.Add(amount)
	case FlowDirectionOutcome:
		w.Balance = w.Balance.Sub(amount)
	}
}

// Revert undoes a transaction's signed effect on the balance. It is the exact
// inverse of Apply for the same amount and direction.
func (w *Wallet) Revert(amount decimal.Decimal, direction FlowDirection) {
	switch direction {
	case FlowDirectionIncome:
		w.Balance = w.Balance.Sub(amount)
	case FlowDirectionOutcome:
		w.Balance = w.Balance.Add(amount)
	}
}
