package domain

import (
	"errors"
	"fmt"
)

// Message is one role-tagged entry in a conversation sent to the model.
type Message struct {
	Role    string
	Content string
}

// Conversation roles understood by chat completion APIs.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionRequest carries a conversation plus sampling parameters for one
// remote completion call.
type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Validation errors surfaced immediately to the caller; never retried.
var (
	// ErrEmptyInput is returned when the input text is empty after trimming.
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrClientNotReady is returned when no remote client has been configured.
	ErrClientNotReady = errors.New("completion client not configured")
)

// UnknownTaskError reports a task identifier that is not in the registry.
type UnknownTaskError struct {
	Task string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q", e.Task)
}

// TransientError tags a remote failure as retryable: rate limits, transient
// 5xx responses, and network errors. Anything not wrapped in TransientError
// is treated as a permanent rejection and fails immediately.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err so the retry policy will treat it as retryable.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err is tagged as retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// RetriesExhaustedError is returned after all retry attempts fail. It wraps
// the last underlying error.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("remote formatting failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}
