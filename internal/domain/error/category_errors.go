package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist for the
	// acting user or has been soft-deleted.
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-010001"
)
