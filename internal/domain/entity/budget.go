package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents one concrete spending-limit period with start/end dates
// and an accrued CurrentAmount. It may exist standalone or be materialized
// from a BudgetConfig.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BudgetConfigID *uuid.UUID // Set when materialized from a recurring config
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	Limit         decimal.Decimal
	CurrentAmount decimal.Decimal
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity with a zero accrued amount.
func NewBudget(
	userID uuid.UUID,
	budgetConfigID *uuid.UUID,
	name string,
	startDate time.Time,
	endDate time.Time,
	limit decimal.Decimal,
	description *string,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:             uuid.New(),
		UserID:         userID,
		BudgetConfigID: budgetConfigID,
		Name:           name,
		StartDate:      startDate,
		EndDate:        endDate,
		Limit:          limit,
		CurrentAmount:  decimal.Zero,
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Apply accrues an outcome transaction's amount against the budget.
// CurrentAmount may exceed Limit; exceeding it is not an error here.
func (b *Budget) Apply(amount decimal.Decimal) {
	b.CurrentAmount = b.CurrentAmount.Add(amount)
}

// Revert undoes a previously applied accrual.
func (b *Budget) Revert(amount decimal.Decimal) {
	b.CurrentAmount = b.CurrentAmount.Sub(amount)
}
