package ipinfo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// clientVersion is reported in the User-Agent header.
const clientVersion = "3.1.0"

// maxResponseBytes caps response reads; a full 1000-entry batch payload
// stays a few MB under this.
const maxResponseBytes = 16 << 20

// Default API hosts. The core host serves full details; the api host
// serves the lite, plus, resproxy, and batch surfaces.
const (
	defaultCoreURL = "https://ipinfo.io"
	defaultAPIURL  = "https://api.ipinfo.io"
)

// setHeaders assembles request headers: library defaults first, then
// the client's custom headers, then content type and authorization, so
// custom headers can never mask the token.
func (c *Client) setHeaders(h http.Header, body bool) {
	h.Set("User-Agent", "IPinfoClient/Go/"+clientVersion)
	h.Set("Accept", "application/json")
	for k, v := range c.headers {
		h.Set(k, v)
	}
	if body {
		h.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
}

// get fetches url and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("ipinfo: build request: %w", err)
	}
	c.setHeaders(req.Header, false)
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("ipinfo: decode response: %w", err)
	}
	return nil
}

// getText fetches a single-field endpoint and returns the trimmed body.
func (c *Client) getText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("ipinfo: build request: %w", err)
	}
	c.setHeaders(req.Header, false)
	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// post sends payload as JSON to url and decodes the response into out.
func (c *Client) post(ctx context.Context, url string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ipinfo: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("ipinfo: build request: %w", err)
	}
	c.setHeaders(req.Header, true)
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("ipinfo: decode response: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	c.stats.Request()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.stats.Failure()
		return nil, fmt.Errorf("ipinfo: fetch %s: %w", req.URL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.stats.Failure()
		return nil, fmt.Errorf("ipinfo: read response: %w", err)
	}
	if err := responseError(resp, body); err != nil {
		c.stats.Failure()
		return nil, err
	}
	return body, nil
}

// responseError maps non-2xx responses to typed errors.
func responseError(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrQuotaExceeded
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}

// withTimeout derives a deadline context when d is positive; the
// returned cancel is always safe to call.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
