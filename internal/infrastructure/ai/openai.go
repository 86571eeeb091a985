// Package ai contains completion client adapters for remote model APIs.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"reword/internal/domain"
	"reword/internal/ports"
)

// OpenAIClient implements ports.CompletionClient over the official OpenAI SDK.
type OpenAIClient struct {
	client  openai.Client
	modelID string
}

// NewOpenAIClient builds an SDK-backed client. SDK-internal retries are
// disabled; the formatter service owns the retry policy.
func NewOpenAIClient(apiKey, modelID string, timeout time.Duration) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &OpenAIClient{
		client:  openai.NewClient(opts...),
		modelID: modelID,
	}
}

// Name implements ports.CompletionClient.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Complete implements ports.CompletionClient.
func (c *OpenAIClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.modelID),
		Messages: toSDKMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}
	if len(completion.Choices) == 0 {
		return "", domain.Transient(errors.New("empty completion choices"))
	}
	return completion.Choices[0].Message.Content, nil
}

func toSDKMessages(messages []domain.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

// classify tags retryable failures: rate limits, request timeouts, server
// errors, and network-level failures. Other API rejections (invalid request,
// bad auth) are permanent.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if retryableStatus(apiErr.StatusCode) {
			return domain.Transient(err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.Transient(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Transient(err)
	}
	// Connection resets and similar transport faults come through as plain
	// url.Error values without a status code.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.Transient(err)
	}
	return fmt.Errorf("completion request: %w", err)
}

func retryableStatus(status int) bool {
	switch {
	case status == http.StatusTooManyRequests:
		return true
	case status == http.StatusRequestTimeout:
		return true
	case status >= 500:
		return true
	default:
		return false
	}
}

var _ ports.CompletionClient = (*OpenAIClient)(nil)
