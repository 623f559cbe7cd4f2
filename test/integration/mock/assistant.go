package mock

import (
	"context"
	"sync"

	"github.com/my-wallet/backend/internal/application/adapter"
)

// Assistant is a canned-reply stand-in for the Gemini-backed assistant.
type Assistant struct {
	mu          sync.Mutex
	reply       string
	err         error
	available   bool
	LastMessage string
	LastHistory []adapter.ChatMessage
}

// NewAssistant creates an available assistant that echoes a fixed reply.
func NewAssistant() *Assistant {
	return &Assistant{
		reply:     "Here is some advice about your spending.",
		available: true,
	}
}

// SetReply configures the reply returned by the next calls.
func (a *Assistant) SetReply(reply string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reply = reply
}

// SetError makes subsequent calls fail with the given error.
func (a *Assistant) SetError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.err = err
}

// SetAvailable toggles the configured state.
func (a *Assistant) SetAvailable(available bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.available = available
}

// Reset restores the default canned behavior.
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reply = "Here is some advice about your spending."
	a.err = nil
	a.available = true
	a.LastMessage = ""
	a.LastHistory = nil
}

// Reply implements adapter.AssistantService.
func (a *Assistant) Reply(ctx context.Context, history []adapter.ChatMessage, message string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.LastMessage = message
	a.LastHistory = history
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

// IsAvailable implements adapter.AssistantService.
func (a *Assistant) IsAvailable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.available
}
