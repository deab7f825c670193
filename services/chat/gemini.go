package chat

import (
	"context"
	"fmt"
	"strings"

	"regenmed/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Config configures the Gemini relay. Zero values fall back to the default
// model and system prompt.
type Config struct {
	APIKey       string
	Model        string
	SystemPrompt string
}

const defaultModel = "gemini-1.5-flash"

// GeminiRelay implements Relay over the Gemini API.
type GeminiRelay struct {
	model *genai.GenerativeModel
}

func NewGeminiRelay(ctx context.Context, cfg Config) (*GeminiRelay, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = defaultModel
	}
	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}

	model := client.GenerativeModel(name)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt)},
	}
	return &GeminiRelay{model: model}, nil
}

// Reply seeds a chat with the prior turns and sends the new user message.
// The reply text is returned verbatim; no parsing or moderation happens
// here.
func (r *GeminiRelay) Reply(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
	cs := r.model.StartChat()
	cs.History = ConvertHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", &ModelError{Cause: err}
	}

	reply := extractText(resp)
	if reply == "" {
		return "", &ModelError{Cause: fmt.Errorf("empty model response")}
	}
	return reply, nil
}

// ConvertHistory converts caller-supplied turns to genai contents. Exported
// for testing.
func ConvertHistory(history []models.ChatTurn) []*genai.Content {
	var contents []*genai.Content
	for _, turn := range history {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.Text(p.Text))
		}
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: parts,
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
