package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-3.5-turbo", body.Model)
		assert.Equal(t, 500, body.MaxTokens)
		assert.InDelta(t, 0.7, body.Temperature, 1e-9)
		require.Len(t, body.Messages, 3)
		assert.Equal(t, RoleSystem, body.Messages[0].Role)
		assert.Equal(t, "contexto", body.Messages[0].Content)
		assert.Equal(t, RoleAssistant, body.Messages[1].Role)
		assert.Equal(t, RoleUser, body.Messages[2].Role)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"São 42 escolas."}}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(OpenAIConfig{BaseURL: server.URL + "/", APIKey: "secret"})
	reply, err := client.Complete(context.Background(), Request{
		System: "contexto",
		Messages: []Message{
			{Role: RoleAssistant, Content: "Olá!"},
			{Role: RoleUser, Content: "Quantas escolas existem?"},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "São 42 escolas.", reply)
}

func TestOpenAIClientMissingKeySkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(OpenAIConfig{BaseURL: server.URL, APIKey: "  "})
	_, err := client.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "oi"}}})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestOpenAIClientStatusErrors(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"error":{"message":"falhou"}}`))
		}))
		client := NewOpenAIClient(OpenAIConfig{BaseURL: server.URL, APIKey: "k"})
		_, err := client.Complete(context.Background(), Request{})
		server.Close()

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "code %d", code)
		assert.Equal(t, code, statusErr.Code)
		assert.Equal(t, "falhou", statusErr.Message)
		assert.Equal(t, "openai", statusErr.Provider)
	}
}

func TestOpenAIClientMalformedResponses(t *testing.T) {
	bodies := []string{`not json`, `{"choices":[]}`, `{"choices":[{}]}`}
	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		client := NewOpenAIClient(OpenAIConfig{BaseURL: server.URL, APIKey: "k"})
		_, err := client.Complete(context.Background(), Request{})
		server.Close()
		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestMockClientScriptsReplies(t *testing.T) {
	mock := NewMockClient("um", "dois")
	ctx := context.Background()
	first, _ := mock.Complete(ctx, Request{})
	second, _ := mock.Complete(ctx, Request{})
	third, _ := mock.Complete(ctx, Request{})
	assert.Equal(t, []string{"um", "dois", "dois"}, []string{first, second, third})
	assert.Len(t, mock.Requests(), 3)

	boom := errors.New("boom")
	_, err := NewMockClient().FailWith(boom).Complete(ctx, Request{})
	assert.ErrorIs(t, err, boom)
}

func TestMockClientBlockHonoursContext(t *testing.T) {
	mock := NewMockClient("tarde").BlockUntil(make(chan struct{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mock.Complete(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
