package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/usecase/budgetconfig"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/entrypoint/dto"
	"github.com/leviis10/old-money/internal/integration/entrypoint/middleware"
)

// BudgetConfigController handles budget config endpoints.
type BudgetConfigController struct {
	listUseCase   *budgetconfig.ListBudgetConfigsUseCase
	getUseCase    *budgetconfig.GetBudgetConfigUseCase
	createUseCase *budgetconfig.CreateBudgetConfigUseCase
	updateUseCase *budgetconfig.UpdateBudgetConfigUseCase
	deleteUseCase *budgetconfig.DeleteBudgetConfigUseCase
}

// NewBudgetConfigController creates a new budget config controller instance.
func NewBudgetConfigController(
	listUseCase *budgetconfig.ListBudgetConfigsUseCase,
	getUseCase *budgetconfig.GetBudgetConfigUseCase,
	createUseCase *budgetconfig.CreateBudgetConfigUseCase,
	updateUseCase *budgetconfig.UpdateBudgetConfigUseCase,
	deleteUseCase *budgetconfig.DeleteBudgetConfigUseCase,
) *BudgetConfigController {
	return &BudgetConfigController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budget-configs requests.
func (c *BudgetConfigController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budgetconfig.ListBudgetConfigsInput{UserID: userID})
	if err != nil {
		c.handleBudgetConfigError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetConfigListResponse(output.BudgetConfigs))
}

// Get handles GET /budget-configs/:id requests.
func (c *BudgetConfigController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	configID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget config ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budgetconfig.GetBudgetConfigInput{
		BudgetConfigID: configID,
		UserID:         userID,
	})
	if err != nil {
		c.handleBudgetConfigError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetConfigResponse(output.BudgetConfig))
}

// Create handles POST /budget-configs requests.
func (c *BudgetConfigController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budgetconfig.CreateBudgetConfigInput{
		UserID:         userID,
		Name:           req.Name,
		Limit:          req.Limit,
		Description:    req.Description,
		RepetitionType: entity.RepetitionType(req.RepetitionType),
	})
	if err != nil {
		c.handleBudgetConfigError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetConfigResponse(output.BudgetConfig))
}

// Update handles PUT /budget-configs/:id requests.
func (c *BudgetConfigController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	configID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget config ID format",
		})
		return
	}

	var req dto.UpdateBudgetConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budgetconfig.UpdateBudgetConfigInput{
		BudgetConfigID: configID,
		UserID:         userID,
		Name:           req.Name,
		Limit:          req.Limit,
		Description:    req.Description,
	})
	if err != nil {
		c.handleBudgetConfigError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetConfigResponse(output.BudgetConfig))
}

// Delete handles DELETE /budget-configs/:id requests.
func (c *BudgetConfigController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	configID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget config ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), budgetconfig.DeleteBudgetConfigInput{
		BudgetConfigID: configID,
		UserID:         userID,
	})
	if err != nil {
		c.handleBudgetConfigError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetConfigError maps budget config errors to HTTP responses.
func (c *BudgetConfigController) handleBudgetConfigError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrBudgetConfigNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget config not found",
			Code:  string(domainerror.ErrCodeBudgetConfigNotFound),
		})
	case errors.Is(err, domainerror.ErrInvalidRepetitionType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Repetition type must be daily, weekly, monthly or yearly",
			Code:  string(domainerror.ErrCodeInvalidRepetitionType),
		})
	case errors.Is(err, domainerror.ErrInvalidBudgetLimit):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Limit is not a valid decimal amount",
			Code:  string(domainerror.ErrCodeInvalidBudgetLimit),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
