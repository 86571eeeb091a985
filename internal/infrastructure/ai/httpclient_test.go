package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reword/internal/domain"
)

func testRequest() domain.CompletionRequest {
	return domain.CompletionRequest{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "rewrite this"},
			{Role: domain.RoleUser, Content: "hello"},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

func TestHTTPClientCompleteSuccess(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  formatted  "}}]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-model", "test-key", server.Client())
	out, err := client.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "formatted", out)

	assert.Equal(t, "test-model", captured["model"])
	assert.Equal(t, float64(500), captured["max_tokens"])
	assert.Equal(t, 0.7, captured["temperature"])
	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "rewrite this", first["content"])
}

func TestHTTPClientRateLimitIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "m", "", server.Client())
	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err), "429 should be transient, got %v", err)
}

func TestHTTPClientServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "m", "", server.Client())
	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}

func TestHTTPClientBadRequestIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "m", "", server.Client())
	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	assert.False(t, domain.IsTransient(err), "400 should not be retried, got %v", err)
}

func TestHTTPClientNetworkFailureIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(server.URL, "m", "", nil)
	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err), "connection refused should be transient, got %v", err)
}

func TestHTTPClientEmptyChoicesIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "m", "", server.Client())
	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}

func TestRetryableStatus(t *testing.T) {
	cases := map[int]bool{
		http.StatusTooManyRequests:     true,
		http.StatusRequestTimeout:      true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
	}
	for status, want := range cases {
		if got := retryableStatus(status); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", status, got, want)
		}
	}
}
