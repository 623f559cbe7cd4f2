// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/my-wallet/backend/internal/application/adapter"
)

// finPalSystemPrompt frames the assistant. The model only sees what the
// client sends; it has no direct access to the user's data.
const finPalSystemPrompt = `You are FinPal, a friendly personal finance assistant inside the My Wallet app.
You help users understand their spending, plan budgets and make progress on their saving goals.
Keep answers short and practical. When the user shares numbers, work with those numbers.
Never invent transactions or balances the user did not mention, and never give investment advice.`

// GeminiAssistant implements the AssistantService using Google Gemini.
type GeminiAssistant struct {
	apiKey    string
	modelName string
}

// NewGeminiAssistant creates a new Gemini assistant instance.
func NewGeminiAssistant(apiKey, modelName string) *GeminiAssistant {
	return &GeminiAssistant{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiAssistant) IsAvailable() bool {
	return s.apiKey != ""
}

// Reply sends the conversation to Gemini and returns the model's answer.
func (s *GeminiAssistant) Reply(
	ctx context.Context,
	history []adapter.ChatMessage,
	message string,
) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(finPalSystemPrompt)},
	}

	chat := model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		chat.History = append(chat.History, &genai.Content{
			Role:  string(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	reply := extractText(resp)
	if reply == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return reply, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
