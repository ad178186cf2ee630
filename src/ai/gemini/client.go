package gemini

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
	baseEndpoint     = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel     = "gemini-2.5-pro"
	defaultMaxTokens = 8192
)

type client struct {
	apiKey     string
	httpClient *http.Client
	defaults   core.Options
}

// NewClient constructs a Gemini-backed implementation of core.Client with the
// provided default model name.
func NewClient(cfg core.FactoryConfig, model string) (core.Client, error) {
	if cfg.GeminiKey == "" {
		return nil, fmt.Errorf("gemini: API key not configured")
	}
	if model == "" {
		model = defaultModel
	}
	return &client{
		apiKey: cfg.GeminiKey,
		// Streaming turns with search grounding routinely outlast a chat
		// completion, so the transport timeout is generous.
		httpClient: webclient.NewDefault(300 * time.Second),
		defaults: core.Options{
			Model:           valueOrDefault(cfg.Model, model),
			Temperature:     cfg.Temperature,
			MaxOutputTokens: orInt(cfg.MaxOutputTokens, defaultMaxTokens),
			SystemPrompt:    cfg.SystemPrompt,
			EnableWebSearch: cfg.EnableWebSearch,
		},
	}, nil
}

func (c *client) Respond(ctx context.Context, input string, opts core.Options) (string, error) {
	merged := c.merge(opts)
	payload, _ := json.Marshal(buildRequest(merged, input))
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseEndpoint, merged.Model, c.apiKey)

	_, body, err := webclient.DoWithRetry(ctx, 3, 2*time.Second, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
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
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	text := result.text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}

// Stream runs one turn against streamGenerateContent and forwards each SSE
// chunk. The raw chunk JSON is passed through as the event text so callers
// can spot grounding activity (webSearchQueries etc.) by substring.
func (c *client) Stream(ctx context.Context, input string, fn core.StreamFunc, opts core.Options) (string, error) {
	merged := c.merge(opts)
	payload, _ := json.Marshal(buildRequest(merged, input))
	url := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse&key=%s", baseEndpoint, merged.Model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
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
		var chunk generateResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		final.WriteString(chunk.text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("gemini: stream read: %w", err)
	}
	return final.String(), nil
}

func buildRequest(opts core.Options, input string) map[string]interface{} {
	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": input}},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     opts.Temperature,
			"maxOutputTokens": opts.MaxOutputTokens,
		},
	}
	if opts.SystemPrompt != "" {
		body["system_instruction"] = map[string]interface{}{
			"parts": []map[string]string{{"text": opts.SystemPrompt}},
		}
	}
	if opts.EnableWebSearch {
		body["tools"] = []map[string]interface{}{
			{"google_search": map[string]interface{}{}},
		}
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
	if opts.EnableWebSearch {
		out.EnableWebSearch = true
	}
	return out
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) text() string {
	var b strings.Builder
	for _, cand := range r.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String()
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
