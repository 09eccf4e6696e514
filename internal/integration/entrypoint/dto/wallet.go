package dto

import (
	"time"

	"github.com/leviis10/old-money/internal/application/usecase/wallet"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// UpdateWalletRequest represents the request body for wallet update.
type UpdateWalletRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Balance     string    `json:"balance"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for listing wallets.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a WalletOutput to a WalletResponse DTO.
func ToWalletResponse(output *wallet.WalletOutput) WalletResponse {
	return WalletResponse{
		ID:          output.ID.String(),
		Name:        output.Name,
		Balance:     output.Balance.String(),
		Description: output.Description,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

// ToWalletListResponse converts a list of WalletOutput to WalletListResponse.
func ToWalletListResponse(outputs []*wallet.WalletOutput) WalletListResponse {
	wallets := make([]WalletResponse, len(outputs))
	for i, output := range outputs {
		wallets[i] = ToWalletResponse(output)
	}
	return WalletListResponse{
		Wallets: wallets,
	}
}
