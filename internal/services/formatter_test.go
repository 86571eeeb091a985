package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reword/internal/domain"
)

func newTestFormatter(client *stubClient, store *stubStore) *Formatter {
	f := NewFormatter(domain.DefaultTaskRegistry(), client, store, nopLogger{})
	f.sleep = func(time.Duration) {}
	return f
}

func TestFormatSendsInstructionAndInputWithTaskParameters(t *testing.T) {
	for _, taskID := range []string{"formal", "bullet", "summarize"} {
		client := &stubClient{output: "formatted"}
		store := &stubStore{}
		f := newTestFormatter(client, store)

		out, err := f.Format(context.Background(), "hello world", taskID)
		require.NoError(t, err)
		assert.Equal(t, "formatted", out)
		require.Len(t, client.requests, 1)

		task, _ := f.Tasks.Lookup(taskID)
		req := client.requests[0]
		require.Len(t, req.Messages, 2)
		assert.Equal(t, domain.RoleSystem, req.Messages[0].Role)
		assert.Equal(t, task.Instruction, req.Messages[0].Content)
		assert.Equal(t, domain.RoleUser, req.Messages[1].Role)
		assert.Equal(t, "hello world", req.Messages[1].Content)
		assert.Equal(t, task.MaxTokens, req.MaxTokens)
		assert.Equal(t, task.Temperature, req.Temperature)
	}
}

func TestFormatRejectsEmptyInputWithoutNetworkCall(t *testing.T) {
	client := &stubClient{output: "unused"}
	f := newTestFormatter(client, &stubStore{})

	_, err := f.Format(context.Background(), "", "formal")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = f.Format(context.Background(), "   ", "bullet")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	assert.Empty(t, client.requests)
}

func TestFormatRejectsUnknownTaskWithoutNetworkCall(t *testing.T) {
	client := &stubClient{output: "unused"}
	f := newTestFormatter(client, &stubStore{})

	_, err := f.Format(context.Background(), "text", "nonexistent")
	var unknownErr *domain.UnknownTaskError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nonexistent", unknownErr.Task)
	assert.Empty(t, client.requests)
}

func TestFormatFailsWhenClientMissing(t *testing.T) {
	f := NewFormatter(domain.DefaultTaskRegistry(), nil, &stubStore{}, nopLogger{})

	_, err := f.Format(context.Background(), "text", "formal")
	assert.ErrorIs(t, err, domain.ErrClientNotReady)
}

func TestFormatRetriesTransientFailuresWithExponentialBackoff(t *testing.T) {
	client := &stubClient{
		output:   "third time lucky",
		failures: []error{domain.Transient(errors.New("rate limited")), domain.Transient(errors.New("rate limited"))},
	}
	store := &stubStore{}
	f := newTestFormatter(client, store)

	var slept []time.Duration
	f.sleep = func(d time.Duration) { slept = append(slept, d) }

	out, err := f.Format(context.Background(), "retry me", "formal")
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", out)
	assert.Len(t, client.requests, 3)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
	require.Len(t, store.records, 1)
}

func TestFormatExhaustsRetriesAndRecordsNothing(t *testing.T) {
	cause := domain.Transient(errors.New("upstream down"))
	client := &stubClient{failures: []error{cause, cause, cause}}
	store := &stubStore{}
	f := newTestFormatter(client, store)

	_, err := f.Format(context.Background(), "doomed", "formal")
	var exhausted *domain.RetriesExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Len(t, client.requests, 3)
	assert.Empty(t, store.records)
}

func TestFormatDoesNotRetryPermanentFailures(t *testing.T) {
	permanent := errors.New("invalid request")
	client := &stubClient{failures: []error{permanent}}
	f := newTestFormatter(client, &stubStore{})

	_, err := f.Format(context.Background(), "text", "summarize")
	assert.ErrorIs(t, err, permanent)
	assert.Len(t, client.requests, 1)
}

func TestFormatRecordsHistoryLengths(t *testing.T) {
	client := &stubClient{output: "short"}
	store := &stubStore{}
	f := newTestFormatter(client, store)

	_, err := f.Format(context.Background(), "a longer input text", "bullet")
	require.NoError(t, err)
	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.Equal(t, "bullet", rec.task)
	assert.Equal(t, len("a longer input text"), rec.inputLength)
	assert.Equal(t, len("short"), rec.outputLength)
}

func TestFormatSwallowsHistoryFailures(t *testing.T) {
	client := &stubClient{output: "ok"}
	store := &stubStore{err: errors.New("disk full")}
	f := newTestFormatter(client, store)

	out, err := f.Format(context.Background(), "text", "formal")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

type stubClient struct {
	output   string
	failures []error
	requests []domain.CompletionRequest
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	s.requests = append(s.requests, req)
	if n := len(s.requests); n <= len(s.failures) {
		return "", s.failures[n-1]
	}
	return s.output, nil
}

type recordedEntry struct {
	task         string
	inputLength  int
	outputLength int
}

type stubStore struct {
	records []recordedEntry
	err     error
}

func (s *stubStore) Record(task string, inputLength, outputLength int) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, recordedEntry{task, inputLength, outputLength})
	return nil
}

func (s *stubStore) Entries() ([]domain.HistoryEntry, error) {
	return nil, nil
}

func (s *stubStore) Stats() (domain.Statistics, bool, error) {
	return domain.Statistics{}, false, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
