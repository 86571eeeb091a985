package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"reword/internal/app"
	"reword/internal/domain"
	"reword/internal/infrastructure/history"
)

const timestampFormat = "2006-01-02 15:04:05"

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect formatting history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.db>",
		Short: "Archive history to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHistory(cmd.OutOrStdout(), container, args[0])
		},
	}
}

func listHistoryEntries(out io.Writer, container *app.Container, limit int) error {
	entries, err := container.HistoryStore.Entries()
	if err != nil {
		return fmt.Errorf("failed to retrieve history entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, msgNoHistory)
		return nil
	}

	// Most recent entries last in the file; show the tail.
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	for _, entry := range entries {
		printHistoryEntry(out, entry)
	}
	return nil
}

func printHistoryEntry(out io.Writer, entry domain.HistoryEntry) {
	fmt.Fprintf(out, "%s | %-9s | in %d chars | out %d chars\n",
		entry.Timestamp.Format(timestampFormat),
		entry.Task,
		entry.InputLength,
		entry.OutputLength)
}

func exportHistory(out io.Writer, container *app.Container, path string) error {
	entries, err := container.HistoryStore.Entries()
	if err != nil {
		return fmt.Errorf("failed to retrieve history entries: %w", err)
	}
	if err := history.ExportSQLite(entries, path); err != nil {
		return fmt.Errorf("failed to export history to %s: %w", path, err)
	}
	fmt.Fprintf(out, "Exported %d entries to %s\n", len(entries), path)
	return nil
}
