package llm

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// Client is the interface all remote text-generation implementations satisfy.
// Implementations make exactly one call per Generate invocation — failover
// decisions belong to the callers.
type Client interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string, maxTokens int) (*Response, error)
}

// Response holds the raw response content and token usage.
type Response struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// NewFromEnv constructs the process-wide client. The handle is built once in
// main and injected into the generator and evaluator.
func NewFromEnv() (Client, string) {
	if os.Getenv("USE_CLI_GENERATOR") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		log.Println("LLM client using Claude CLI (local plan)")
		return NewCLIClient(cliPath), "claude-cli"
	}

	if os.Getenv("MOCK_GENERATOR") == "true" {
		log.Println("LLM client using mock data")
		return NewMockClient(), "mock"
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	log.Println("LLM client using Anthropic API:", model)
	return NewAPIClient(model, os.Getenv("ANTHROPIC_API_KEY")), model
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model, apiKey string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string, maxTokens int) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic API call: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &Response{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}
