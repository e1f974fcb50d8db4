// Package remote delegates layout computations to an HTTP layout service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
	"github.com/ortfo/gui/pkg/layoutsvc"
	"github.com/ortfo/gui/pkg/observability"
)

const (
	httpTimeout = 30 * time.Second

	// maxResponseSize bounds the body read from the service.
	maxResponseSize = 16 << 20
)

// Client is a [blocks.LayoutService] backed by a remote HTTP service.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a client for the service at baseURL. A nil httpClient selects
// a client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout service URL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}
	return &Client{base: base, http: httpClient}, nil
}

// Name returns the base URL of the service, which identifies it in cache
// keys.
func (c *Client) Name() string {
	return c.base.String()
}

// Layout posts d to the service and decodes the positions it answers with.
func (c *Client) Layout(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error) {
	var out content.Translated[content.Positioned]
	if err := c.post(ctx, layoutsvc.LayoutPath, d, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = content.Translated[content.Positioned]{}
	}
	return out, nil
}

// Normalize asks the service for the canonical form of l. A zero capacity
// lets the service use the width of l.
func (c *Client) Normalize(ctx context.Context, l layout.Layout, capacity int) (layout.Layout, int, error) {
	var out layoutsvc.NormalizeResponse
	req := layoutsvc.NormalizeRequest{Layout: l, Capacity: capacity}
	if err := c.post(ctx, layoutsvc.NormalizePath, req, &out); err != nil {
		return nil, 0, err
	}
	return out.Layout, out.Capacity, nil
}

// Health checks that the service is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, layoutsvc.HealthPath, nil, nil)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "encode request")
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	endpoint := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, method, endpoint.Host, endpoint.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, endpoint.Host, endpoint.Path, err)
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Wrap(errors.ErrCodeTimeout, err, "%s %s", method, endpoint.Path)
		}
		return errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, endpoint.Path)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, method, endpoint.Host, endpoint.Path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "read response")
	}
	if err := checkStatus(resp.StatusCode, data); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.ErrCodeLayoutService, err, "decode response")
	}
	return nil
}

// checkStatus turns a failed response into an error, keeping the error code
// reported by the service when it sent one.
func checkStatus(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	var resp layoutsvc.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Err()
	}
	return errors.New(errors.ErrCodeLayoutService, "status %d: %s", code, strings.TrimSpace(string(body)))
}

var _ blocks.LayoutService = (*Client)(nil)
