package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show reword version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "reword version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
