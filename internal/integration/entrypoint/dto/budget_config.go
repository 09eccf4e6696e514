package dto

import (
	"time"

	"github.com/leviis10/old-money/internal/application/usecase/budgetconfig"
)

// CreateBudgetConfigRequest represents the request body for budget config creation.
type CreateBudgetConfigRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Limit          string  `json:"limit" binding:"required"`
	Description    *string `json:"description,omitempty"`
	RepetitionType string  `json:"repetition_type" binding:"required,oneof=daily weekly monthly yearly"`
}

// UpdateBudgetConfigRequest represents the request body for budget config update.
type UpdateBudgetConfigRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Limit       string  `json:"limit" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// BudgetConfigResponse represents a single budget config in API responses.
type BudgetConfigResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Limit          string     `json:"limit"`
	Description    *string    `json:"description,omitempty"`
	RepetitionType string     `json:"repetition_type"`
	LastCreate     *time.Time `json:"last_create,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BudgetConfigListResponse represents the response for listing budget configs.
type BudgetConfigListResponse struct {
	BudgetConfigs []BudgetConfigResponse `json:"budget_configs"`
}

// ToBudgetConfigResponse converts a BudgetConfigOutput to a BudgetConfigResponse DTO.
func ToBudgetConfigResponse(output *budgetconfig.BudgetConfigOutput) BudgetConfigResponse {
	return BudgetConfigResponse{
		ID:             output.ID.String(),
		Name:           output.Name,
		Limit:          output.Limit.String(),
		Description:    output.Description,
		RepetitionType: string(output.RepetitionType),
		LastCreate:     output.LastCreate,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

// ToBudgetConfigListResponse converts a list of BudgetConfigOutput to BudgetConfigListResponse.
func ToBudgetConfigListResponse(outputs []*budgetconfig.BudgetConfigOutput) BudgetConfigListResponse {
	configs := make([]BudgetConfigResponse, len(outputs))
	for i, output := range outputs {
		configs[i] = ToBudgetConfigResponse(output)
	}
	return BudgetConfigListResponse{
		BudgetConfigs: configs,
	}
}
