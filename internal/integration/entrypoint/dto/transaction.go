package dto

import (
	"time"

	"github.com/leviis10/old-money/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount travels as a string to preserve exact decimal values.
type CreateTransactionRequest struct {
	CategoryID    string    `json:"category_id" binding:"required,uuid"`
	WalletID      string    `json:"wallet_id" binding:"required,uuid"`
	BudgetID      *string   `json:"budget_id,omitempty" binding:"omitempty,uuid"`
	Amount        string    `json:"amount" binding:"required"`
	Description   *string   `json:"description,omitempty"`
	FlowDirection string    `json:"flow_direction" binding:"required,oneof=income outcome"`
	IssuedAt      time.Time `json:"issued_at" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Updates are full replacements; every mutable field must be present.
type UpdateTransactionRequest struct {
	CategoryID    string    `json:"category_id" binding:"required,uuid"`
	WalletID      string    `json:"wallet_id" binding:"required,uuid"`
	BudgetID      *string   `json:"budget_id,omitempty" binding:"omitempty,uuid"`
	Amount        string    `json:"amount" binding:"required"`
	Description   *string   `json:"description,omitempty"`
	FlowDirection string    `json:"flow_direction" binding:"required,oneof=income outcome"`
	IssuedAt      time.Time `json:"issued_at" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	BudgetID      *string   `json:"budget_id,omitempty"`
	WalletID      string    `json:"wallet_id"`
	Amount        string    `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	FlowDirection string    `json:"flow_direction"`
	IssuedAt      time.Time `json:"issued_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	var budgetID *string
	if output.BudgetID != nil {
		id := output.BudgetID.String()
		budgetID = &id
	}

	return TransactionResponse{
		ID:            output.ID.String(),
		CategoryID:    output.CategoryID.String(),
		BudgetID:      budgetID,
		WalletID:      output.WalletID.String(),
		Amount:        output.Amount.String(),
		Description:   output.Description,
		FlowDirection: string(output.FlowDirection),
		IssuedAt:      output.IssuedAt,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of TransactionOutput to TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
