package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type AnthropicClient struct {
	client      *anthropic.Client
	model       anthropic.Model
	temperature float64
}

func NewAnthropicClient(cfg AnthropicConfig) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := anthropic.Model("claude-haiku-4-5") // value of anthropic.ModelClaudeHaiku4_5 in newer SDKs
	if cfg.Model != "" {
		model = anthropic.Model(cfg.Model)
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client:      &client,
		model:       model,
		temperature: cfg.Temperature,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   2048,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, ErrNoChoices
	}

	return &Completion{
		Text:      resp.Content[0].Text,
		ModelUsed: string(c.model),
	}, nil
}
