// Package proxy forwards gateway calls to the internal agent services. It
// performs no retries of its own; retrying is the caller's decision.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/webclient"
)

// DownstreamError wraps a failed downstream call with the service's identity
// so gateway errors stay debuggable without leaking internal structure.
type DownstreamError struct {
	Service string
	Err     error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Service, e.Err)
}

func (e *DownstreamError) Unwrap() error { return e.Err }

type Client struct {
	httpClient *http.Client
}

func New() *Client {
	// Per-call deadlines come from the request context; the transport
	// timeout is only a backstop.
	return &Client{httpClient: webclient.NewDefault(90 * time.Second)}
}

// PostJSON posts a JSON body to baseURL+path and returns the raw response
// body. Network failures and non-2xx statuses both become DownstreamErrors.
func (c *Client) PostJSON(ctx context.Context, service, baseURL, path string, body interface{}, timeout time.Duration) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &DownstreamError{Service: service, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimRight(baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &DownstreamError{Service: service, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DownstreamError{Service: service, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownstreamError{Service: service, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &DownstreamError{
			Service: service,
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}
	return raw, nil
}
