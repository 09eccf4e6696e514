package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leviis10/old-money/internal/application/usecase/transaction"
	"github.com/leviis10/old-money/internal/domain/entity"
	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/entrypoint/dto"
	"github.com/leviis10/old-money/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints. Every mutation goes
// through the ledger engine so wallet balances and budget accruals stay
// consistent with the transaction log.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{UserID: userID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := c.buildCreateInput(userID, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := c.buildUpdateInput(transactionID, userID, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildCreateInput parses the request identifiers into a use case input.
func (c *TransactionController) buildCreateInput(userID uuid.UUID, req dto.CreateTransactionRequest) (transaction.CreateTransactionInput, error) {
	categoryID, walletID, budgetID, err := parseTransactionRefs(req.CategoryID, req.WalletID, req.BudgetID)
	if err != nil {
		return transaction.CreateTransactionInput{}, err
	}

	return transaction.CreateTransactionInput{
		UserID:        userID,
		CategoryID:    categoryID,
		WalletID:      walletID,
		BudgetID:      budgetID,
		Amount:        req.Amount,
		Description:   req.Description,
		FlowDirection: entity.FlowDirection(req.FlowDirection),
		IssuedAt:      req.IssuedAt,
	}, nil
}

// buildUpdateInput parses the request identifiers into a use case input.
func (c *TransactionController) buildUpdateInput(transactionID, userID uuid.UUID, req dto.UpdateTransactionRequest) (transaction.UpdateTransactionInput, error) {
	categoryID, walletID, budgetID, err := parseTransactionRefs(req.CategoryID, req.WalletID, req.BudgetID)
	if err != nil {
		return transaction.UpdateTransactionInput{}, err
	}

	return transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		CategoryID:    categoryID,
		WalletID:      walletID,
		BudgetID:      budgetID,
		Amount:        req.Amount,
		Description:   req.Description,
		FlowDirection: entity.FlowDirection(req.FlowDirection),
		IssuedAt:      req.IssuedAt,
	}, nil
}

// parseTransactionRefs parses the category, wallet and optional budget IDs.
func parseTransactionRefs(categoryID, walletID string, budgetID *string) (uuid.UUID, uuid.UUID, *uuid.UUID, error) {
	parsedCategoryID, err := uuid.Parse(categoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("invalid category ID format")
	}

	parsedWalletID, err := uuid.Parse(walletID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("invalid wallet ID format")
	}

	var parsedBudgetID *uuid.UUID
	if budgetID != nil {
		id, err := uuid.Parse(*budgetID)
		if err != nil {
			return uuid.Nil, uuid.Nil, nil, errors.New("invalid budget ID format")
		}
		parsedBudgetID = &id
	}

	return parsedCategoryID, parsedWalletID, parsedBudgetID, nil
}

// handleTransactionError maps ledger errors to HTTP responses. A missing
// reference of any kind is a 404; malformed values are 400.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
	case errors.Is(err, domainerror.ErrWalletNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Wallet not found",
			Code:  string(domainerror.ErrCodeWalletNotFound),
		})
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
	case errors.Is(err, domainerror.ErrBudgetNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget not found",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidFlowDirection:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
