package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashpoint493/NodeToCode-sub000/internal/httpclient"
)

// newTestClient points a client at a local httptest server, bypassing
// SSRF protection for the loopback address.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	c.httpClient = httpclient.WrapClient(srv.Client())
	return c
}

func TestChatSuccess(t *testing.T) {
	var gotReq ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := ChatCompletionResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "  generated code  "}}},
			Usage:   Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}
		json.NewEncoder(w).Encode(resp)
	})

	resp, err := c.Chat(context.Background(), ChatRequest{
		SystemPrompt: "You translate blueprints.",
		UserPrompt:   "translate this",
	})
	require.NoError(t, err)

	assert.Equal(t, "generated code", resp.Content)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	// System prompt goes first, then the user message
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestChatNoAPIKey(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestChatHTTPErrorNotRetried(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	})

	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, 1, calls, "4xx responses must not be retried")
}

func TestChatEmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	})

	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestChatPerRequestOverrides(t *testing.T) {
	var gotReq ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []Choice{{Message: Message{Content: "ok"}}},
		})
	})

	temp := 0.9
	tokens := 64
	model := "anthropic/claude-sonnet-4"
	_, err := c.Chat(context.Background(), ChatRequest{
		UserPrompt:  "hi",
		Temperature: &temp,
		MaxTokens:   &tokens,
		Model:       &model,
	})
	require.NoError(t, err)

	assert.Equal(t, model, gotReq.Model)
	assert.Equal(t, temp, gotReq.Temperature)
	assert.Equal(t, tokens, gotReq.MaxTokens)
}
