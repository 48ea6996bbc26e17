package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client generates a single chat completion from a system prompt and the
// composed user content. Implementations perform exactly one call with no
// retries.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// Factory builds a Client bound to an API key. The key lives in the
// registry and can change at runtime, so clients are constructed per
// request rather than once at startup.
type Factory func(apiKey string) (Client, error)

// OpenAIClient adapts langchaingo's OpenAI model to the Client interface.
type OpenAIClient struct {
	model llms.Model
}

// NewOpenAIFactory returns a Factory producing OpenAI-backed clients for
// the given model name.
func NewOpenAIFactory(modelName string) Factory {
	return func(apiKey string) (Client, error) {
		model, err := openai.New(
			openai.WithToken(apiKey),
			openai.WithModel(modelName),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		return &OpenAIClient{model: model}, nil
	}
}

// Generate performs one chat completion call.
func (c *OpenAIClient) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userContent),
	}
	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("langchain GenerateContent failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned an empty response")
	}
	return resp.Choices[0].Content, nil
}
