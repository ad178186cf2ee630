package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/webclient"
)

const (
	chatEndpoint     = "https://api.openai.com/v1/chat/completions"
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 8192
)

type client struct {
	apiKey     string
	httpClient *http.Client
	defaults   core.Options
}

// NewClient constructs an OpenAI-backed implementation of core.Client with the
// provided default model name.
func NewClient(cfg core.FactoryConfig, model string) (core.Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("openai: API key not configured")
	}
	if model == "" {
		model = defaultModel
	}
	return &client{
		apiKey:     cfg.OpenAIKey,
		httpClient: webclient.NewDefault(300 * time.Second),
		defaults: core.Options{
			Model:           valueOrDefault(cfg.Model, model),
			Temperature:     cfg.Temperature,
			MaxOutputTokens: orInt(cfg.MaxOutputTokens, defaultMaxTokens),
			SystemPrompt:    cfg.SystemPrompt,
		},
	}, nil
}

func (c *client) Respond(ctx context.Context, input string, opts core.Options) (string, error) {
	merged := c.merge(opts)
	payload, _ := json.Marshal(buildRequest(merged, input, false))

	_, body, err := webclient.DoWithRetry(ctx, 3, 2*time.Second, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatEndpoint, bytes.NewReader(payload))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return resp.StatusCode, b, fmt.Errorf("status %d", resp.StatusCode)
		}
		return resp.StatusCode, b, nil
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty response")
	}
	return result.Choices[0].Message.Content, nil
}

func (c *client) Stream(ctx context.Context, input string, fn core.StreamFunc, opts core.Options) (string, error) {
	merged := c.merge(opts)
	payload, _ := json.Marshal(buildRequest(merged, input, true))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var final strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}
		if fn != nil {
			fn(core.Event{Text: data})
		}
		var chunk struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		for _, choice := range chunk.Choices {
			final.WriteString(choice.Delta.Content)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("openai: stream read: %w", err)
	}
	return final.String(), nil
}

func buildRequest(opts core.Options, input string, stream bool) map[string]interface{} {
	messages := []map[string]string{}
	if opts.SystemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": opts.SystemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": input})

	body := map[string]interface{}{
		"model":                 opts.Model,
		"messages":              messages,
		"temperature":           opts.Temperature,
		"max_completion_tokens": opts.MaxOutputTokens,
	}
	if stream {
		body["stream"] = true
	}
	return body
}

func (c *client) merge(opts core.Options) core.Options {
	out := c.defaults
	if opts.Model != "" {
		out.Model = opts.Model
	}
	if opts.Temperature != 0 {
		out.Temperature = opts.Temperature
	}
	if opts.MaxOutputTokens != 0 {
		out.MaxOutputTokens = opts.MaxOutputTokens
	}
	if opts.SystemPrompt != "" {
		out.SystemPrompt = opts.SystemPrompt
	}
	return out
}

func valueOrDefault(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func orInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
