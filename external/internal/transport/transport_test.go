package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/platform/resilience"
	"github.com/courtvision/court-vision/internal/usecase"
)

func TestGetJSON_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(Config{Name: "test", BaseURL: server.URL, MaxRetries: 1, RetryDelay: time.Millisecond})

	var out struct {
		OK bool `json:"ok"`
	}
	if _, err := client.GetJSON(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("get json: %v", err)
	}
	if !out.OK || calls.Load() != 2 {
		t.Fatalf("expected success after one retry, ok=%v calls=%d", out.OK, calls.Load())
	}
}

func TestGetJSON_TooManyRequestsIsRateLimited(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(Config{Name: "test", BaseURL: server.URL, MaxRetries: 3, RetryDelay: time.Millisecond})
	_, err := client.GetJSON(context.Background(), "/ping", nil, nil)
	if !errors.Is(err, usecase.ErrProviderRateLimited) {
		t.Fatalf("expected rate limited error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("429 must not be retried, got %d calls", calls.Load())
	}
}

func TestGetJSON_NotFoundIsNotTransient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := New(Config{Name: "test", BaseURL: server.URL})
	_, err := client.GetJSON(context.Background(), "/missing", nil, nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound || IsTransient(err) {
		t.Fatalf("expected non-transient 404, got %v", err)
	}
}

func TestGetJSON_OpenCircuitReportsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(Config{
		Name:           "test",
		BaseURL:        server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute},
	})

	if _, err := client.GetJSON(context.Background(), "/a", nil, nil); !IsTransient(err) {
		t.Fatalf("expected transient failure first, got %v", err)
	}
	_, err := client.GetJSON(context.Background(), "/b", nil, nil)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}

func TestGetJSON_OutageDoesNotBlockLaterRecords(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 5 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(Config{Name: "espn", BaseURL: server.URL})
	for i := range 5 {
		if _, err := client.GetJSON(context.Background(), fmt.Sprintf("/scoreboard/%d", i), nil, nil); !IsTransient(err) {
			t.Fatalf("request %d: expected transient failure, got %v", i, err)
		}
	}

	var out struct {
		OK bool `json:"ok"`
	}
	if _, err := client.GetJSON(context.Background(), "/scoreboard/next", nil, &out); err != nil {
		t.Fatalf("healthy request after outage: %v", err)
	}
	if !out.OK || calls.Load() != 6 {
		t.Fatalf("expected the sixth request to reach the provider, ok=%v calls=%d", out.OK, calls.Load())
	}
}

func TestLimiter_SpacesRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	delay := 40 * time.Millisecond
	client := New(Config{Name: "test", BaseURL: server.URL, RequestDelay: delay})

	start := time.Now()
	for _, path := range []string{"/1", "/2", "/3"} {
		if _, err := client.GetJSON(context.Background(), path, nil, nil); err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 2*delay {
		t.Fatalf("expected at least %s between three requests, took %s", 2*delay, elapsed)
	}
}

func TestRedact_HidesSecret(t *testing.T) {
	client := New(Config{Name: "test", Secret: "sk-live"})
	got := client.redact("https://api.example.com/x?api_key=sk-live&q=1")
	if got != "https://api.example.com/x?api_key=REDACTED&q=1" {
		t.Fatalf("unexpected redaction: %s", got)
	}
}
