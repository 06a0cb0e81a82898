package youdao

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oukeidos/ydt/internal/dict"
	"github.com/oukeidos/ydt/internal/httpclient"
)

// DefaultEndpoint is the Youdao open API text translation endpoint.
const DefaultEndpoint = "https://openapi.youdao.com/api"

type Client struct {
	builder    Builder
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if strings.TrimSpace(endpoint) != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = httpclient.NewClient(timeout)
	}
}

func NewClient(builder Builder, opts ...Option) *Client {
	c := &Client{
		builder:    builder,
		endpoint:   DefaultEndpoint,
		httpClient: httpclient.NewClient(httpclient.DefaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts a signed request and returns the raw response body.
// Transport failures are terminal; nothing is retried.
func (c *Client) Send(ctx context.Context, req *Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(req.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", httpclient.UserAgent())

	slog.Debug("Youdao API request", "word", req.Word, "from", req.From, "to", req.To, "curtime", req.Timestamp)
	body, err := httpclient.Fetch(c.httpClient, httpReq)
	if err != nil {
		slog.Debug("Youdao API request failed", "error", err)
		return nil, err
	}
	slog.Debug("Youdao API response", "bytes", len(body))
	return body, nil
}

// Lookup runs the whole pipeline for one word: build, send, parse.
func (c *Client) Lookup(ctx context.Context, word string) (*dict.Result, error) {
	req, err := c.builder.Build(word)
	if err != nil {
		return nil, err
	}
	raw, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return parse(raw, req.Word)
}
