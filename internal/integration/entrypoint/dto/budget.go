package dto

import (
	"time"

	"github.com/leviis10/old-money/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation. Either
// repetition_type or an explicit start_date/end_date pair must be present.
type CreateBudgetRequest struct {
	Name           string     `json:"name" binding:"required,min=1,max=100"`
	Limit          string     `json:"limit" binding:"required"`
	Description    *string    `json:"description,omitempty"`
	RepetitionType *string    `json:"repetition_type,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	Limit       string    `json:"limit" binding:"required"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	BudgetConfigID *string   `json:"budget_config_id,omitempty"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Limit          string    `json:"limit"`
	CurrentAmount  string    `json:"current_amount"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(output *budget.BudgetOutput) BudgetResponse {
	var configID *string
	if output.BudgetConfigID != nil {
		id := output.BudgetConfigID.String()
		configID = &id
	}

	return BudgetResponse{
		ID:             output.ID.String(),
		BudgetConfigID: configID,
		Name:           output.Name,
		StartDate:      output.StartDate,
		EndDate:        output.EndDate,
		Limit:          output.Limit.String(),
		CurrentAmount:  output.CurrentAmount.String(),
		Description:    output.Description,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of BudgetOutput to BudgetListResponse.
func ToBudgetListResponse(outputs []*budget.BudgetOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(outputs))
	for i, output := range outputs {
		budgets[i] = ToBudgetResponse(output)
	}
	return BudgetListResponse{
		Budgets: budgets,
	}
}
