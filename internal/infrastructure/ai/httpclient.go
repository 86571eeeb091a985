package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"reword/internal/domain"
	"reword/internal/ports"
)

// HTTPClient talks to any OpenAI-compatible chat completions endpoint
// (self-hosted gateways, Ollama) over plain net/http.
type HTTPClient struct {
	endpoint   string
	modelID    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient builds a client for the given base endpoint. The endpoint is
// the full chat completions URL, e.g. http://localhost:11434/v1/chat/completions.
func NewHTTPClient(endpoint, modelID, apiKey string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		endpoint:   endpoint,
		modelID:    modelID,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Name implements ports.CompletionClient.
func (c *HTTPClient) Name() string {
	return "http"
}

// Complete implements ports.CompletionClient.
func (c *HTTPClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	body, err := buildChatCompletionRequest(c.modelID, req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("content-type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classify(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Transient(err)
	}

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("%s: %s: %s", c.endpoint, resp.Status, strings.TrimSpace(string(payload)))
		if retryableStatus(resp.StatusCode) {
			return "", domain.Transient(err)
		}
		return "", err
	}

	return parseChatCompletionResponse(payload)
}

func buildChatCompletionRequest(modelID string, req domain.CompletionRequest) ([]byte, error) {
	chatMessages := make([]map[string]string, 0, len(req.Messages))
	for _, msg := range req.Messages {
		chatMessages = append(chatMessages, map[string]string{
			"role":    strings.ToLower(msg.Role),
			"content": msg.Content,
		})
	}

	request := map[string]interface{}{
		"model":    modelID,
		"messages": chatMessages,
	}
	if req.MaxTokens > 0 {
		request["max_tokens"] = req.MaxTokens
	}
	if req.Temperature > 0 {
		request["temperature"] = req.Temperature
	}

	return json.Marshal(request)
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", domain.Transient(fmt.Errorf("no completion returned"))
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

var _ ports.CompletionClient = (*HTTPClient)(nil)
