package dto

import (
	"github.com/my-wallet/backend/internal/application/adapter"
)

// ChatMessageDTO represents one turn of the conversation history.
type ChatMessageDTO struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// SendMessageRequest represents the request body for an assistant message.
// The client replays the conversation history with each request.
type SendMessageRequest struct {
	Message string           `json:"message" binding:"required"`
	History []ChatMessageDTO `json:"history,omitempty" binding:"omitempty,dive"`
}

// SendMessageResponse represents the assistant's reply.
type SendMessageResponse struct {
	Reply string `json:"reply"`
}

// ToChatHistory converts request history to adapter chat messages.
func ToChatHistory(history []ChatMessageDTO) []adapter.ChatMessage {
	messages := make([]adapter.ChatMessage, len(history))
	for i, msg := range history {
		messages[i] = adapter.ChatMessage{
			Role: adapter.ChatRole(msg.Role),
			Text: msg.Text,
		}
	}
	return messages
}
