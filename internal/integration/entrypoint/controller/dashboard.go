package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/my-wallet/backend/internal/application/usecase/dashboard"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
	"github.com/my-wallet/backend/internal/integration/entrypoint/dto"
	"github.com/my-wallet/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getOverviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests. It returns the
// current-month totals, the trailing-week spending chart and the most
// recent transactions in one payload.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
	})
	if err != nil {
		var transactionErr *domainerror.TransactionError
		if errors.As(err, &transactionErr) {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: transactionErr.Message,
				Code:  string(transactionErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(domainerror.ErrCodeTransactionInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
