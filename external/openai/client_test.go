package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/usecase"
)

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var req chatRequest
		assert.NoError(t, sonic.Unmarshal(raw, &req))
		assert.Equal(t, "test-model", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "box score", req.Messages[1].Content)
		}

		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"summary\": \"ok\"}"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "sk-test", Model: "test-model"})
	got, err := client.Complete(context.Background(), usecase.CompletionRequest{System: "analyst", Prompt: "box score"})
	require.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, got)
}

func TestClient_CompleteRateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "sk-test"})
	_, err := client.Complete(context.Background(), usecase.CompletionRequest{Prompt: "x"})
	if !errors.Is(err, usecase.ErrProviderRateLimited) {
		t.Fatalf("expected ErrProviderRateLimited, got %v", err)
	}
}

func TestClient_CompleteNoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := NewClient(ClientConfig{BaseURL: srv.URL}).Complete(context.Background(), usecase.CompletionRequest{Prompt: "x"})
	require.Error(t, err)
}
