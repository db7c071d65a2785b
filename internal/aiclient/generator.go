// Package aiclient wraps the hosted chat-completion API used for study
// material generation. Groq exposes an OpenAI-compatible surface, so the
// client is the standard go-openai one pointed at the Groq base URL.
package aiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

const systemMessage = "You are a helpful study assistant. Always respond in the same language as the transcript."

// Config configures the generator. APIKey may be empty; generation then
// fails with ErrAuthentication on first use instead of at startup.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// Generator sends prompts to the configured provider. One outbound
// request per Generate call; no caching, no retries.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	hasKey      bool
}

// NewGenerator builds a Generator from cfg, applying the generation
// defaults used throughout: temperature 0.7, 2000 max tokens.
func NewGenerator(cfg Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		hasKey:      strings.TrimSpace(cfg.APIKey) != "",
	}
}

// Generate sends promptText as a single completion request and returns
// the model's text verbatim.
func (g *Generator) Generate(ctx context.Context, promptText string) (string, error) {
	if !g.hasKey {
		return "", fmt.Errorf("%w: GROQ_API_KEY is not set", models.ErrAuthentication)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: promptText},
		},
	})
	if err != nil {
		return "", mapProviderError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: model %s", models.ErrEmptyResponse, g.model)
	}

	return resp.Choices[0].Message.Content, nil
}

// mapProviderError translates go-openai errors into the shared taxonomy.
func mapProviderError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: %v", models.ErrAuthentication, err)
	case status == 429:
		return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
	case status >= 500:
		return fmt.Errorf("%w: provider error: %v", models.ErrNetwork, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}

	return fmt.Errorf("completion request failed: %w", err)
}
