// Package imagegen calls the image-generation backend used for verdict
// posters. Generation is a side effect of verification: callers must treat
// every failure here as non-fatal.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/webclient"
)

const (
	baseEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel = "gemini-2.5-flash-image"
)

// Generator produces one image for a prompt and returns its base64 payload.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: webclient.NewDefault(120 * time.Second),
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("imagegen: API key not configured")
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": prompt}},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseModalities": []string{"IMAGE"},
		},
	})
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseEndpoint, c.model, c.apiKey)

	_, body, err := webclient.DoWithRetry(ctx, 2, 2*time.Second, func() (int, []byte, error) {
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
		return "", fmt.Errorf("imagegen API error: %w", err)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData struct {
						Data string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("imagegen: decode response: %w", err)
	}
	for _, cand := range result.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData.Data != "" {
				return part.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("imagegen: no image in response")
}
