// Package cli provides the cobra command surface and the interactive session.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reword/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running the root with no
// subcommand starts the interactive formatting session.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "reword",
		Short: "reword - AI text formatter",
		Long:  "reword rewrites text professionally, converts it to bullet points, or summarizes it using a remote language model.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := NewSession(container, cmd.InOrStdin(), cmd.OutOrStdout())
			session.Interactive = isatty.IsTerminal(os.Stdin.Fd())
			return session.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newStatsCommand(container))
	root.AddCommand(newTasksCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func newStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, ok, err := container.HistoryStore.Stats()
			if err != nil {
				return fmt.Errorf("load statistics: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), msgNoHistory)
				return nil
			}
			RenderStats(cmd.OutOrStdout(), stats, container.Tasks)
			return nil
		},
	}
}

func newTasksCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List available formatting tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			RenderTasks(cmd.OutOrStdout(), container.Tasks)
			return nil
		},
	}
}
