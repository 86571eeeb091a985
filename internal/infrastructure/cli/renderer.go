package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"reword/internal/domain"
)

// RenderResult prints one formatting result block.
func RenderResult(out io.Writer, task, text string) {
	fmt.Fprintln(out, "\n=== FORMATTING RESULT ===")
	fmt.Fprintf(out, "\nTask: %s\n", strings.ToUpper(task))
	fmt.Fprintln(out, text)
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out)
}

// RenderStats prints the aggregate usage statistics. Tasks appear in
// registry order first, then any tasks only present in older history.
func RenderStats(out io.Writer, stats domain.Statistics, tasks *domain.TaskRegistry) {
	fmt.Fprintln(out, "\n=== USAGE STATISTICS ===")
	fmt.Fprintf(out, "\nTotal uses: %s\n", humanize.Comma(int64(stats.Total)))

	fmt.Fprintln(out, "\nTask usage:")
	seen := make(map[string]bool)
	for _, name := range tasks.Names() {
		if usage, ok := stats.ByTask[name]; ok {
			fmt.Fprintf(out, "- %s: %d (%.1f%%)\n", name, usage.Count, usage.Percentage)
			seen[name] = true
		}
	}
	var rest []string
	for name := range stats.ByTask {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		usage := stats.ByTask[name]
		fmt.Fprintf(out, "- %s: %d (%.1f%%)\n", name, usage.Count, usage.Percentage)
	}

	fmt.Fprintf(out, "\nAverage input length: %.0f characters\n", stats.AvgInputLength)
	fmt.Fprintf(out, "Average output length: %.0f characters\n", stats.AvgOutputLength)
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out)
}

// RenderTasks lists the registry with ordinal shortcuts.
func RenderTasks(out io.Writer, tasks *domain.TaskRegistry) {
	for i, t := range tasks.All() {
		fmt.Fprintf(out, "%d. %-10s %s (max %d tokens)\n", i+1, t.Name, t.Description, t.MaxTokens)
	}
}
