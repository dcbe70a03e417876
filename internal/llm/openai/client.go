package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mvelkova/docextract/internal/llm"
)

const systemPrompt = "You are a document analysis expert. Extract information and return only valid JSON."

// Invoke implements llm.Invoker over text-only chat/completions. Provider
// errors come back wrapped; the caller decides whether they are fatal.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("openai.invoke.http_error",
			"status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("openai api error: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("openai.invoke.decode_error", "error", err, "raw_bytes", len(raw))
		return "", fmt.Errorf("openai api error: decode response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("openai.invoke.no_choices", "raw_bytes", len(raw))
		return "", fmt.Errorf("openai api error: no choices in response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	c.logger.Info("openai.invoke.ok",
		"model", c.cfg.Model,
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}
