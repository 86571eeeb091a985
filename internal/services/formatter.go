// Package services contains the application use cases.
package services

import (
	"context"
	"strings"
	"time"

	"reword/internal/domain"
	"reword/internal/ports"
)

// Default retry policy: 3 total attempts, 1s initial backoff, doubling.
const (
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = time.Second
)

// Formatter sends user text through a formatting task and retries transient
// remote failures with exponential backoff. All collaborators are injected
// at construction.
type Formatter struct {
	Tasks   *domain.TaskRegistry
	Client  ports.CompletionClient
	History ports.HistoryStore
	Logger  ports.Logger

	MaxAttempts    int
	InitialBackoff time.Duration

	// sleep is swapped out in tests to observe the backoff schedule.
	sleep func(time.Duration)
}

// NewFormatter wires a Formatter with the default retry policy.
func NewFormatter(tasks *domain.TaskRegistry, client ports.CompletionClient, history ports.HistoryStore, log ports.Logger) *Formatter {
	return &Formatter{
		Tasks:          tasks,
		Client:         client,
		History:        history,
		Logger:         log,
		MaxAttempts:    DefaultMaxAttempts,
		InitialBackoff: DefaultInitialBackoff,
		sleep:          time.Sleep,
	}
}

// Format runs one formatting task over the input text and returns the
// formatted result.
//
// Validation failures (empty input, unknown task, missing client) surface
// immediately without any network call. Transient remote failures are
// retried up to MaxAttempts with doubling backoff; exhaustion returns a
// RetriesExhaustedError wrapping the last error. Permanent remote failures
// are returned as-is after the first attempt.
func (f *Formatter) Format(ctx context.Context, input, taskID string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", domain.ErrEmptyInput
	}
	if f.Client == nil {
		return "", domain.ErrClientNotReady
	}
	task, ok := f.Tasks.Lookup(taskID)
	if !ok {
		return "", &domain.UnknownTaskError{Task: taskID}
	}

	req := domain.CompletionRequest{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: task.Instruction},
			{Role: domain.RoleUser, Content: input},
		},
		MaxTokens:   task.MaxTokens,
		Temperature: task.Temperature,
	}

	output, err := f.completeWithRetry(ctx, req, task.Name)
	if err != nil {
		return "", err
	}

	f.recordHistory(task.Name, input, output)
	return output, nil
}

func (f *Formatter) completeWithRetry(ctx context.Context, req domain.CompletionRequest, task string) (string, error) {
	attempts := f.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	backoff := f.InitialBackoff
	if backoff <= 0 {
		backoff = DefaultInitialBackoff
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		output, err := f.Client.Complete(ctx, req)
		if err == nil {
			return output, nil
		}
		if !domain.IsTransient(err) {
			return "", err
		}

		lastErr = err
		if f.Logger != nil {
			f.Logger.Warn("remote completion failed", map[string]interface{}{
				"task":    task,
				"attempt": attempt,
				"of":      attempts,
				"error":   err.Error(),
			})
		}

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		f.doSleep(backoff)
		backoff *= 2
	}

	return "", &domain.RetriesExhaustedError{Attempts: attempts, Err: lastErr}
}

// recordHistory appends a usage record. Failures are reported to the
// operational log and never propagate to the caller.
func (f *Formatter) recordHistory(task, input, output string) {
	if f.History == nil {
		return
	}
	inLen := len([]rune(input))
	outLen := len([]rune(output))
	if err := f.History.Record(task, inLen, outLen); err != nil && f.Logger != nil {
		f.Logger.Error("failed to save history", err, map[string]interface{}{"task": task})
	}
}

func (f *Formatter) doSleep(d time.Duration) {
	if f.sleep != nil {
		f.sleep(d)
		return
	}
	time.Sleep(d)
}
