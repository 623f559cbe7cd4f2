// Package assistant contains use cases for the FinPal chat assistant.
package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// MaxMessageLength is the maximum allowed length for a user message.
const MaxMessageLength = 4000

// SendMessageInput represents the input for sending a chat message. History
// is the prior conversation, oldest first; the client owns the conversation
// state and replays it on every request.
type SendMessageInput struct {
	UserID  uuid.UUID
	History []adapter.ChatMessage
	Message string
}

// SendMessageOutput represents the output of sending a chat message.
type SendMessageOutput struct {
	Reply string
}

// SendMessageUseCase handles one turn of the assistant conversation.
type SendMessageUseCase struct {
	assistantService adapter.AssistantService
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(assistantService adapter.AssistantService) *SendMessageUseCase {
	return &SendMessageUseCase{
		assistantService: assistantService,
	}
}

// Execute sends the message to the assistant and returns its reply.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	if input.Message == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyMessage,
			"message must not be empty",
			domainerror.ErrEmptyMessage,
		)
	}

	if len(input.Message) > MaxMessageLength {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeMessageTooLong,
			fmt.Sprintf("message must not exceed %d characters", MaxMessageLength),
			domainerror.ErrMessageTooLong,
		)
	}

	if !uc.assistantService.IsAvailable() {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant service is not available",
			domainerror.ErrAssistantUnavailable,
		)
	}

	reply, err := uc.assistantService.Reply(ctx, input.History, input.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant reply: %w", err)
	}

	return &SendMessageOutput{Reply: reply}, nil
}
