// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is a single turn in an assistant conversation. The client keeps
// the conversation history and replays it with each request; the backend holds
// no chat state.
type ChatMessage struct {
	Role ChatRole
	Text string
}

// AssistantService defines the interface for the conversational assistant.
type AssistantService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Reply produces the assistant's answer to message given the prior
	// conversation history, oldest first.
	Reply(ctx context.Context, history []ChatMessage, message string) (string, error)
}
