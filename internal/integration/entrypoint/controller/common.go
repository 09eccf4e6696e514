package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/leviis10/old-money/internal/domain/error"
	"github.com/leviis10/old-money/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes the response for requests that reached a
// handler without an authenticated user in the context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
