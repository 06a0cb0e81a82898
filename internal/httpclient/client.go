package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/version"
)

const (
	// DefaultTimeout bounds every dictionary request. A lookup is a single
	// small round trip, so anything slower is treated as a failure.
	DefaultTimeout = 10 * time.Second
	// MaxResponseBytes caps HTTP response bodies to prevent memory spikes.
	MaxResponseBytes = 2 * 1024 * 1024
	// Transport tuning. A lookup opens one connection per process.
	MaxIdleConns          = 4
	MaxIdleConnsPerHost   = 2
	IdleConnTimeout       = 30 * time.Second
	TLSHandshakeTimeout   = 5 * time.Second
	ExpectContinueTimeout = 1 * time.Second
)

var (
	defaultClient     *http.Client
	defaultClientOnce sync.Once
	overrideClient    *http.Client
)

// UserAgent identifies ydt to the dictionary service.
func UserAgent() string {
	return "ydt/" + version.Version + " (+https://github.com/oukeidos/ydt)"
}

// NewClient returns a new http.Client with the specified timeout.
// A non-positive timeout falls back to DefaultTimeout; the client is never unbounded.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConnsPerHost,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ExpectContinueTimeout: ExpectContinueTimeout,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// GetDefaultClient returns a standardized http.Client for use across the application.
func GetDefaultClient() *http.Client {
	if overrideClient != nil {
		return overrideClient
	}
	defaultClientOnce.Do(func() {
		defaultClient = NewClient(DefaultTimeout)
	})
	return defaultClient
}

// SetDefaultClientForTesting overrides the singleton client for tests.
// It returns a restore function to reset the previous client.
func SetDefaultClientForTesting(client *http.Client) func() {
	prevOverride := overrideClient
	overrideClient = client
	return func() {
		overrideClient = prevOverride
	}
}

// DoAndRead performs an HTTP request, reads the entire response body,
// ensures the body is closed, and returns the body content and the response object.
// This prevents resource leaks by always closing the response body.
func DoAndRead(client *http.Client, req *http.Request) ([]byte, *http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength > MaxResponseBytes {
		return nil, resp, fmt.Errorf("response body too large (limit %d bytes)", MaxResponseBytes)
	}

	limited := &io.LimitedReader{R: resp.Body, N: MaxResponseBytes + 1}
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseBytes {
		return nil, resp, fmt.Errorf("response body too large (limit %d bytes)", MaxResponseBytes)
	}

	return body, resp, nil
}

// Fetch sends req once and returns the body of a 2xx response. Failures are
// classified as timeout, network or unexpected-status errors. Nothing is retried.
func Fetch(client *http.Client, req *http.Request) ([]byte, error) {
	body, resp, err := DoAndRead(client, req)
	if err != nil {
		if resp != nil {
			// Headers arrived; the body was oversized or broke mid-read.
			if !isSuccess(resp.StatusCode) {
				return nil, apperrors.UnexpectedStatus(resp.StatusCode, fmt.Errorf("http status %s", resp.Status))
			}
			if IsTimeout(err) {
				return nil, apperrors.Timeout(err)
			}
			return nil, apperrors.Network(err)
		}
		return nil, ClassifyError(err)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, apperrors.UnexpectedStatus(resp.StatusCode, fmt.Errorf("http status %s", resp.Status))
	}
	return body, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// ClassifyError maps a client.Do failure to a timeout or network error.
func ClassifyError(err error) error {
	if IsTimeout(err) {
		return apperrors.Timeout(err)
	}
	return apperrors.Network(err)
}

// IsTimeout reports whether err is a client, context or socket deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
