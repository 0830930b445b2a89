package openai

import (
	"context"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/courtvision/court-vision/external/internal/transport"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/platform/resilience"
	"github.com/courtvision/court-vision/internal/usecase"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the chat completions endpoint. Requests are not retried:
// the caller falls back to a templated answer instead.
type Client struct {
	http   *transport.Client
	model  string
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+strings.TrimSpace(cfg.APIKey))

	return &Client{
		http: transport.New(transport.Config{
			Name:           "openai",
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			Header:         header,
			Secret:         cfg.APIKey,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		model:  model,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system and one user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, req usecase.CompletionRequest) (string, error) {
	body, err := encodeRequest(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if _, err := c.http.PostJSON(ctx, "/chat/completions", body, &resp); err != nil {
		return "", crerr.Wrap(err, "openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", crerr.New("openai chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func encodeRequest(req chatRequest) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(req); err != nil {
		return nil, crerr.Wrap(err, "encode openai request")
	}
	return append([]byte(nil), buf.B...), nil
}

var _ usecase.CompletionProvider = (*Client)(nil)
