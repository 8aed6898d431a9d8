package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	return `{
		"id": "chatcmpl-123",
		"model": "llama-3.1-8b-instant",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ` + mustJSON(content) + `}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 42, "completion_tokens": 7, "total_tokens": 49}
	}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestNewHTTPClientRequiresAPIKey(t *testing.T) {
	_, err := NewHTTPClient("https://api.groq.com/openai/v1", "", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestCompleteSendsChatCompletionRequest(t *testing.T) {
	var captured chatRequest
	var capturedAuth, capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("A concise literature review.")))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "test-key", time.Minute)
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), Request{
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.7,
		MaxTokens:   2000,
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a Literature Review Specialist."},
			{Role: RoleUser, Content: "Write a concise literature review for this topic."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", capturedPath)
	assert.Equal(t, "Bearer test-key", capturedAuth)
	assert.Equal(t, "llama-3.1-8b-instant", captured.Model)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, RoleSystem, captured.Messages[0].Role)
	assert.Equal(t, RoleUser, captured.Messages[1].Role)

	assert.Equal(t, "A concise literature review.", resp.Content)
	assert.Equal(t, 42, resp.PromptTokens)
	assert.Equal(t, 7, resp.CompletionTokens)
}

func TestCompleteSurfacesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "test-key", time.Minute)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestCompleteSurfacesAPIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Some compatible endpoints return 200 with an error object
		_, _ = w.Write([]byte(`{"error": {"message": "model not found", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "test-key", time.Minute)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "chatcmpl-123", "choices": []}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "test-key", time.Minute)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background connection read;
		// otherwise it never notices the client disconnect and r.Context() is
		// never cancelled, deadlocking server.Close.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "test-key", time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err = client.Complete(ctx, Request{Model: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
