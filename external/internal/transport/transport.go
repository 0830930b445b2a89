// Package transport is the HTTP plumbing shared by the provider clients:
// a fixed-delay limiter, circuit breaker, request collapsing and retries.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/platform/resilience"
	"github.com/courtvision/court-vision/internal/usecase"
)

const (
	maxResponseBytes = 8 << 20
	defaultTimeout   = 20 * time.Second
)

// ErrTransient marks failures worth retrying and counting against the
// circuit breaker: network errors, unreadable bodies and 5xx responses.
var ErrTransient = crerr.New("provider transient failure")

type Config struct {
	Name       string
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	// RequestDelay is the minimum spacing between outgoing requests.
	// Zero disables the limiter.
	RequestDelay   time.Duration
	Header         http.Header
	Secret         string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	name       string
	httpClient *http.Client
	baseURL    string
	header     http.Header
	secret     string
	limiter    *rate.Limiter
	retry      resilience.RetryPolicy
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
	logger     *logging.Logger
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RequestDelay), 1)
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	return &Client{
		name:       cfg.Name,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		header:     cfg.Header.Clone(),
		secret:     strings.TrimSpace(cfg.Secret),
		limiter:    limiter,
		retry:      resilience.RetryPolicy{MaxRetries: max(cfg.MaxRetries, 0), Backoff: retryDelay},
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker.WithDefaults()),
		logger:     logger.Named(cfg.Name),
	}
}

// GetJSON fetches path and decodes the body into target. Concurrent calls
// for the same URL share one request.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target any) ([]byte, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		return c.do(ctx, http.MethodGet, fullURL, nil)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected %s payload type %T", c.name, out)
	}
	if target != nil {
		if err := sonic.Unmarshal(raw, target); err != nil {
			return nil, crerr.Wrapf(err, "decode %s payload", c.name)
		}
	}
	return raw, nil
}

// PostJSON sends body as application/json and decodes the response.
func (c *Client) PostJSON(ctx context.Context, path string, body []byte, target any) ([]byte, error) {
	raw, err := c.do(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := sonic.Unmarshal(raw, target); err != nil {
			return nil, crerr.Wrapf(err, "decode %s payload", c.name)
		}
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	var raw []byte
	err := c.breaker.Execute(func() error {
		return c.retry.Do(ctx, IsTransient, func(int) error {
			var reqErr error
			raw, reqErr = c.attempt(ctx, method, fullURL, body)
			return reqErr
		})
	}, IsTransient)

	switch {
	case err == nil:
		return raw, nil
	case crerr.Is(err, resilience.ErrCircuitOpen):
		c.logger.WarnContext(ctx, "circuit breaker rejected request", "state", c.breaker.State())
		return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "%s is temporarily unavailable", c.name)
	default:
		c.logger.WarnContext(ctx, "request failed", "method", method, "url", c.redact(fullURL), "error", err)
		return nil, err
	}
}

func (c *Client) attempt(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Mark(crerr.Newf("%s send request: %s", c.name, c.sanitize(err.Error())), ErrTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "%s read response body", c.name), ErrTransient)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, crerr.Wrapf(usecase.ErrProviderRateLimited, "%s status=%d", c.name, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, crerr.Mark(crerr.Newf("%s status=%d body=%s", c.name, resp.StatusCode, abbreviateBody(raw)), ErrTransient)
	default:
		return nil, &StatusError{Provider: c.name, StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
	}
}

// StatusError is a non-retryable 4xx response other than 429.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s status=%d body=%s", e.Provider, e.StatusCode, e.Body)
}

// IsTransient reports whether err was marked as a transient provider failure.
func IsTransient(err error) bool {
	return err != nil && crerr.Is(err, ErrTransient)
}

func (c *Client) sanitize(value string) string {
	if c.secret == "" {
		return value
	}
	return strings.ReplaceAll(value, c.secret, "REDACTED")
}

func (c *Client) redact(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return c.sanitize(rawURL)
	}
	query := parsed.Query()
	for _, key := range []string{"api_key", "api_token", "key"} {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}
	parsed.RawQuery = query.Encode()
	return c.sanitize(parsed.String())
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
