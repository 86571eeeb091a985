package domain

import (
	"fmt"
	"strings"
	"time"
)

// historyTimeLayout is the wall-clock format used in the persisted history
// file, kept compatible with logs written by earlier versions of the tool.
const historyTimeLayout = "2006-01-02 15:04:05"

// HistoryTime marshals as "YYYY-MM-DD HH:MM:SS" in JSON.
type HistoryTime struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t HistoryTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(historyTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *HistoryTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(historyTimeLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parse history timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

// HistoryEntry records one successful formatting call. Entries are appended
// in order and never mutated or deleted.
type HistoryEntry struct {
	Timestamp    HistoryTime `json:"timestamp"`
	Task         string      `json:"task"`
	InputLength  int         `json:"input_length"`
	OutputLength int         `json:"output_length"`
}

// TaskUsage aggregates per-task counts for the statistics view.
type TaskUsage struct {
	Count      int
	Percentage float64
}

// Statistics is the derived view over the full history.
type Statistics struct {
	Total           int
	ByTask          map[string]TaskUsage
	AvgInputLength  float64
	AvgOutputLength float64
}

// ComputeStatistics aggregates history entries. The second return value is
// false when there are no entries, so callers never divide by zero.
func ComputeStatistics(entries []HistoryEntry) (Statistics, bool) {
	if len(entries) == 0 {
		return Statistics{}, false
	}

	stats := Statistics{
		Total:  len(entries),
		ByTask: make(map[string]TaskUsage),
	}

	var totalIn, totalOut int
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Task]++
		totalIn += e.InputLength
		totalOut += e.OutputLength
	}

	for task, count := range counts {
		stats.ByTask[task] = TaskUsage{
			Count:      count,
			Percentage: float64(count) / float64(stats.Total) * 100.0,
		}
	}
	stats.AvgInputLength = float64(totalIn) / float64(stats.Total)
	stats.AvgOutputLength = float64(totalOut) / float64(stats.Total)
	return stats, true
}
