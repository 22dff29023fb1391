// Package llm wraps provider access behind a small chat client. Any
// OpenAI-compatible endpoint works; the provider is selected purely by base
// URL and model id.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1024
)

// Client talks to one configured model.
type Client struct {
	name  string
	model llms.Model
}

// NewClient builds a client for the given display name and model id. An empty
// token still yields a usable client; a missing credential surfaces as an API
// error on the first call, not at startup.
func NewClient(name, modelID, baseURL, token string) (*Client, error) {
	if token == "" {
		token = "unset"
	}
	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(modelID),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model %s: %w", name, err)
	}
	return &Client{name: name, model: model}, nil
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Reply sends the conversation history to the model and returns the
// assistant's next message.
func (c *Client) Reply(ctx context.Context, history []models.Message) (string, error) {
	content := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		role := schema.ChatMessageTypeHuman
		if msg.Role == models.RoleAssistant {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}

	resp, err := c.model.GenerateContent(ctx, content,
		llms.WithTemperature(defaultTemperature),
		llms.WithMaxTokens(defaultMaxTokens),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model %s returned no choices", c.name)
	}
	return resp.Choices[0].Content, nil
}

// Summarize asks the model for a digest of the given conversations.
func (c *Client) Summarize(ctx context.Context, convs []models.ConversationView) (string, error) {
	prompt := BuildSummaryPrompt(convs)
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(defaultTemperature),
		llms.WithMaxTokens(defaultMaxTokens),
	)
}
