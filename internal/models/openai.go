// Package models provides adapters for the generation capability.
package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrEmptyCompletion is returned when the API answers without any choice.
// An empty reply is an error here, never a silent blank turn.
var ErrEmptyCompletion = errors.New("generation returned no choices")

// OpenAIGenerator wraps an OpenAI-compatible chat-completions client.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewOpenAIGenerator returns a generator for the given model.
func NewOpenAIGenerator(apiKey, model string, temperature float64, maxTokens int64) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client:      &client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Generate produces one reply for the system instruction and prompt.
func (g *OpenAIGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.temperature),
		MaxTokens:   openai.Int(g.maxTokens),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
