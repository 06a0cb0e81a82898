package httpclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oukeidos/ydt/internal/apperrors"
)

func TestGetDefaultClient(t *testing.T) {
	client := GetDefaultClient()
	if client == nil {
		t.Fatal("Expected client to not be nil")
	}

	if client.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout to be %v, got %v", DefaultTimeout, client.Timeout)
	}

	if GetDefaultClient() != client {
		t.Errorf("Expected singleton client instance")
	}
}

func TestNewClient(t *testing.T) {
	customTimeout := 5 * time.Second
	client := NewClient(customTimeout)
	if client.Timeout != customTimeout {
		t.Errorf("Expected timeout to be %v, got %v", customTimeout, client.Timeout)
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok || transport == nil {
		t.Fatalf("Expected transport to be *http.Transport")
	}
	if transport.MaxIdleConns != MaxIdleConns {
		t.Errorf("Expected MaxIdleConns to be %d, got %d", MaxIdleConns, transport.MaxIdleConns)
	}
	if transport.TLSHandshakeTimeout != TLSHandshakeTimeout {
		t.Errorf("Expected TLSHandshakeTimeout to be %v, got %v", TLSHandshakeTimeout, transport.TLSHandshakeTimeout)
	}
}

func TestNewClient_NeverUnbounded(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		if got := NewClient(timeout).Timeout; got != DefaultTimeout {
			t.Errorf("NewClient(%v).Timeout = %v, want %v", timeout, got, DefaultTimeout)
		}
	}
}

func TestDoAndRead(t *testing.T) {
	expectedBody := "hello world"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, expectedBody)
	}))
	defer server.Close()

	client := GetDefaultClient()
	req, _ := http.NewRequest("GET", server.URL, nil)

	body, resp, err := DoAndRead(client, req)
	if err != nil {
		t.Fatalf("DoAndRead failed: %v", err)
	}

	if string(body) != expectedBody {
		t.Errorf("Expected body %q, got %q", expectedBody, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status OK, got %v", resp.Status)
	}
}

func TestDoAndReadTooLarge(t *testing.T) {
	oversized := make([]byte, MaxResponseBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(oversized)))
		w.WriteHeader(http.StatusOK)
		w.Write(oversized)
	}))
	defer server.Close()

	client := GetDefaultClient()
	req, _ := http.NewRequest("GET", server.URL, nil)

	_, _, err := DoAndRead(client, req)
	if err == nil || !strings.Contains(err.Error(), "response body too large") {
		t.Fatalf("expected response body too large error, got: %v", err)
	}
}

func TestFetch_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	req, _ := http.NewRequest("GET", server.URL, nil)
	_, err := Fetch(NewClient(time.Second), req)
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindHTTPStatus {
		t.Fatalf("expected http_status kind, got %v (%v)", kind, err)
	}
	if code, _ := apperrors.CodeOf(err); code != "502" {
		t.Fatalf("expected code 502, got %q", code)
	}
}

func TestFetch_OversizedErrorPageKeepsStatus(t *testing.T) {
	oversized := make([]byte, MaxResponseBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write(oversized)
	}))
	defer server.Close()

	req, _ := http.NewRequest("GET", server.URL, nil)
	_, err := Fetch(NewClient(5*time.Second), req)
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindHTTPStatus {
		t.Fatalf("expected http_status kind, got %v (%v)", kind, err)
	}
	if code, _ := apperrors.CodeOf(err); code != "503" {
		t.Fatalf("expected code 503, got %q", code)
	}
}

func TestFetch_OversizedSuccessIsNetwork(t *testing.T) {
	oversized := make([]byte, MaxResponseBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(oversized)
	}))
	defer server.Close()

	req, _ := http.NewRequest("GET", server.URL, nil)
	_, err := Fetch(NewClient(5*time.Second), req)
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindNetwork {
		t.Fatalf("expected network kind, got %v (%v)", kind, err)
	}
}

func TestFetch_TimeoutNotRetried(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	req, _ := http.NewRequest("GET", server.URL, nil)
	_, err := Fetch(NewClient(50*time.Millisecond), req)
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindTimeout {
		t.Fatalf("expected timeout kind, got %v (%v)", kind, err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
}

func TestFetch_NetworkUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	req, _ := http.NewRequest("GET", url, nil)
	_, err := Fetch(NewClient(time.Second), req)
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindNetwork {
		t.Fatalf("expected network kind, got %v (%v)", kind, err)
	}
}

func TestSetDefaultClientForTesting(t *testing.T) {
	custom := &http.Client{Timeout: 3 * time.Second}
	restore := SetDefaultClientForTesting(custom)
	defer restore()

	if GetDefaultClient() != custom {
		t.Fatalf("Expected overridden default client")
	}
}

func TestUserAgent(t *testing.T) {
	if !strings.HasPrefix(UserAgent(), "ydt/") {
		t.Fatalf("unexpected user agent %q", UserAgent())
	}
}
