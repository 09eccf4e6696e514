// Package error defines domain-specific errors for the old-money application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet does not exist for the acting
	// user or has been soft-deleted.
	ErrWalletNotFound = errors.New("wallet not found")
)

// WalletErrorCode defines error codes for wallet errors.
type WalletErrorCode string

const (
	ErrCodeWalletNotFound WalletErrorCode = "WLT-010001"
)
