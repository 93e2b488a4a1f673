// Package llm wraps the Anthropic API behind two call shapes: plain text
// completion and JSON completion. All prompt content belongs to callers;
// this package owns transport, pacing, and response hygiene.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/karaoke-backend/internal/config"
)

// Client is a thin Anthropic wrapper shared by all generators.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
	log       *slog.Logger
}

// NewClient creates a Client from AnthropicConfig. The rate limiter paces
// outgoing calls so a burst of generation requests cannot exhaust API quota.
func NewClient(cfg config.AnthropicConfig, logger *slog.Logger) *Client {
	api := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	return &Client{
		api:       api,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		log:       logger.With("adapter", "llm"),
	}
}

// Complete sends one system+user prompt pair and returns the trimmed
// plain-text response.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llm: wait for rate limiter: %w", err)
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("llm: empty response")
	}

	text := strings.TrimSpace(msg.Content[0].Text)
	if text == "" {
		return "", fmt.Errorf("llm: blank response")
	}

	c.log.DebugContext(ctx, "llm completion", slog.Int("chars", len(text)))

	return text, nil
}

// CompleteJSON sends one prompt pair and unmarshals the response into out.
// Models occasionally wrap JSON in prose or markdown fences; the first
// complete JSON object is extracted and validated before unmarshalling.
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) error {
	text, err := c.Complete(ctx, system, user)
	if err != nil {
		return err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if !json.Valid([]byte(jsonStr)) {
		return fmt.Errorf("llm: response does not contain valid JSON")
	}

	if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
		return fmt.Errorf("llm: unmarshal response: %w", err)
	}

	return nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
