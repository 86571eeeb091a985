// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// These interfaces establish the contract between the application core and
// external adapters. The formatter service depends only on abstractions
// defined here, never on concrete HTTP clients, files, or CLI frameworks.
package ports

import (
	"context"

	"reword/internal/domain"
)

// CompletionClient submits a conversation to a remote language model and
// returns the first completion's text. Implementations must tag retryable
// failures with domain.Transient; untagged errors are treated as permanent
// rejections and are not retried.
type CompletionClient interface {
	Name() string
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// HistoryStore persists one record per successful formatting call and serves
// the derived statistics view.
type HistoryStore interface {
	Record(task string, inputLength, outputLength int) error
	Entries() ([]domain.HistoryEntry, error)
	Stats() (domain.Statistics, bool, error)
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.reword/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external
// services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
