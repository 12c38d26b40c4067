// Package llm wraps the Gemini API for deterministic structured
// generation. Judge calls run at temperature 0 with a response schema so
// the same prompt replays to the same judgment.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/callscope-ai/callscope/pkg/config"
)

// Client produces schema-constrained JSON completions.
type Client interface {
	// GenerateJSON returns the raw JSON text of a completion constrained
	// by the given response schema.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error)
}

// GenAIClient implements Client on top of google.golang.org/genai.
type GenAIClient struct {
	client *genai.Client
	cfg    *config.LLMConfig
}

// NewGenAIClient creates a Gemini-backed client.
func NewGenAIClient(ctx context.Context, apiKey string, cfg *config.LLMConfig) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("llm config is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{
		client: client,
		cfg:    cfg,
	}, nil
}

// GenerateJSON sends the prompt with a JSON response schema and retries
// transient failures with the configured backoffs.
func (c *GenAIClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.cfg.Temperature),
		TopP:             genai.Ptr(c.cfg.TopP),
		MaxOutputTokens:  c.cfg.MaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if systemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= len(c.cfg.RetryBackoffs); attempt++ {
		if attempt > 0 {
			backoff := c.cfg.RetryBackoffs[attempt-1]
			slog.Warn("LLM call failed, retrying",
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := c.generateOnce(ctx, contents, genCfg)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *GenAIClient) generateOnce(ctx context.Context, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (string, error) {
	callCtx := ctx
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, c.cfg.Model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}

	slog.Debug("LLM completion",
		"model", c.cfg.Model,
		"duration", time.Since(start),
		"response_len", len(text))

	return text, nil
}
