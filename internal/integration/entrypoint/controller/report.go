package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/my-wallet/backend/internal/application/usecase/report"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
	"github.com/my-wallet/backend/internal/integration/entrypoint/dto"
	"github.com/my-wallet/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles spending report endpoints.
type ReportController struct {
	getReportUseCase *report.GetReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(getReportUseCase *report.GetReportUseCase) *ReportController {
	return &ReportController{
		getReportUseCase: getReportUseCase,
	}
}

// Get handles GET /reports requests. The months query parameter selects the
// window length and accepts 1, 3 or 6, defaulting to 1.
func (c *ReportController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	months, err := strconv.Atoi(ctx.DefaultQuery("months", "1"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid months parameter",
			Code:  string(domainerror.ErrCodeUnsupportedReportPeriod),
		})
		return
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), report.GetReportInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("X-Cache", cacheHeaderValue(output.FromCache))
	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

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
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidMonthConvention,
		domainerror.ErrCodeInvalidMonthCount,
		domainerror.ErrCodeUnsupportedReportPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func cacheHeaderValue(fromCache bool) string {
	if fromCache {
		return "HIT"
	}
	return "MISS"
}
