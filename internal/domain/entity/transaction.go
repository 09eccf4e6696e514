// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlowDirection represents the direction of a transaction (income or outcome).
type FlowDirection string

const (
	FlowDirectionIncome  FlowDirection = "income"
	FlowDirectionOutcome FlowDirection = "outcome"
)

// Valid reports whether the flow direction is one of the known variants.
func (d FlowDirection) Valid() bool {
	return d == FlowDirectionIncome || d == FlowDirectionOutcome
}

// Transaction represents a single monetary event in the ledger. Amount is
// always positive; FlowDirection carries the sign.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	BudgetID      *uuid.UUID // Optional; only outcome transactions accrue against it
	WalletID      uuid.UUID
	Amount        decimal.Decimal
	Description   *string
	FlowDirection FlowDirection
	IssuedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	budgetID *uuid.UUID,
	walletID uuid.UUID,
	amount decimal.Decimal,
	description *string,
	flowDirection FlowDirection,
	issuedAt time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		CategoryID:    categoryID,
		BudgetID:      budgetID,
		WalletID:      walletID,
		Amount:        amount,
		Description:   description,
		FlowDirection: flowDirection,
		IssuedAt:      issuedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AffectsBudget reports whether this transaction accrues against its linked
// budget: it must reference one and flow outward.
func (t *Transaction) AffectsBudget() bool {
	return t.BudgetID != nil && t.FlowDirection == FlowDirectionOutcome
}
