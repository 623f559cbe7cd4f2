package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/my-wallet/backend/internal/application/usecase/assistant"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
	"github.com/my-wallet/backend/internal/integration/entrypoint/dto"
	"github.com/my-wallet/backend/internal/integration/entrypoint/middleware"
)

// AssistantController handles financial assistant endpoints.
type AssistantController struct {
	sendMessageUseCase *assistant.SendMessageUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(sendMessageUseCase *assistant.SendMessageUseCase) *AssistantController {
	return &AssistantController{
		sendMessageUseCase: sendMessageUseCase,
	}
}

// SendMessage handles POST /assistant/messages requests. The client replays
// the conversation history with each request; no conversation state is kept
// server-side.
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.sendMessageUseCase.Execute(ctx.Request.Context(), assistant.SendMessageInput{
		UserID:  userID,
		History: dto.ToChatHistory(req.History),
		Message: req.Message,
	})
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendMessageResponse{Reply: output.Reply})
}

// handleAssistantError maps assistant errors to HTTP responses.
func (c *AssistantController) handleAssistantError(ctx *gin.Context, err error) {
	var assistantErr *domainerror.AssistantError
	if errors.As(err, &assistantErr) {
		ctx.JSON(c.getStatusCodeForAssistantError(assistantErr.Code), dto.ErrorResponse{
			Error: assistantErr.Message,
			Code:  string(assistantErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeAssistantInternalError),
	})
}

// getStatusCodeForAssistantError maps assistant error codes to HTTP status codes.
func (c *AssistantController) getStatusCodeForAssistantError(code domainerror.AssistantErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyMessage,
		domainerror.ErrCodeMessageTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeAssistantUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
