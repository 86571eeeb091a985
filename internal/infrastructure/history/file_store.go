// Package history persists usage telemetry for formatting calls.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"reword/internal/domain"
	"reword/internal/ports"
)

// FileStore keeps the full history as a single JSON array on disk. Each
// Record call reads the existing array, appends one entry, and rewrites the
// file in full. The mutex covers concurrent use within one process; the
// format is not safe for concurrent writer processes.
type FileStore struct {
	path string
	mu   sync.Mutex

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		now:  time.Now,
	}
}

// Record implements ports.HistoryStore.
func (f *FileStore) Record(task string, inputLength, outputLength int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		// Leave a corrupt log untouched for inspection. The caller logs
		// the failure and the formatting flow continues.
		return err
	}

	entries = append(entries, domain.HistoryEntry{
		Timestamp:    domain.HistoryTime{Time: f.now()},
		Task:         task,
		InputLength:  inputLength,
		OutputLength: outputLength,
	})

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Entries implements ports.HistoryStore. A missing file yields an empty
// history; a corrupt file is an error the caller may log and ignore.
func (f *FileStore) Entries() ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Stats implements ports.HistoryStore. The bool is false when there is no
// recorded history.
func (f *FileStore) Stats() (domain.Statistics, bool, error) {
	entries, err := f.Entries()
	if err != nil {
		return domain.Statistics{}, false, err
	}
	stats, ok := domain.ComputeStatistics(entries)
	return stats, ok, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("corrupt history file %s: %w", f.path, err)
	}
	return entries, nil
}

var _ ports.HistoryStore = (*FileStore)(nil)
