package ai

import (
	"net/http"
	"time"

	"reword/internal/domain"
	"reword/internal/ports"
)

// NewClient picks a completion client for the configured model. An empty
// endpoint means the hosted OpenAI API via the official SDK; any explicit
// endpoint (localhost Ollama, a compatibility gateway) uses the generic
// HTTP client.
func NewClient(settings domain.ModelSettings, apiKey string) ports.CompletionClient {
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if settings.Endpoint == "" {
		return NewOpenAIClient(apiKey, settings.ModelID, timeout)
	}
	return NewHTTPClient(settings.Endpoint, settings.ModelID, apiKey, &http.Client{Timeout: timeout})
}
