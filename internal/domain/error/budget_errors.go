package error

import "errors"

// Budget and budget config domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist for the acting
	// user or has been soft-deleted.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetConfigNotFound is returned when a budget config does not exist
	// for the acting user or has been soft-deleted.
	ErrBudgetConfigNotFound = errors.New("budget config not found")

	// ErrInvalidBudgetPeriod is returned when a budget creation request carries
	// neither an explicit date range nor a repetition type.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period: either a date range or a repetition type is required")

	// ErrInvalidRepetitionType is returned when the repetition type is not one
	// of daily, weekly, monthly or yearly.
	ErrInvalidRepetitionType = errors.New("invalid repetition type")

	// ErrInvalidBudgetLimit is returned when the budget limit cannot be parsed
	// as an exact decimal.
	ErrInvalidBudgetLimit = errors.New("invalid budget limit")
)

// BudgetErrorCode defines error codes for budget and budget config errors.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound        BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidRepetitionType BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidBudgetLimit    BudgetErrorCode = "BDG-010004"
	ErrCodeBudgetConfigNotFound  BudgetErrorCode = "BGC-010001"
)
