package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"reword/internal/infrastructure/cli"
)

func main() {
	// .env is optional; the API key may come from the shell environment.
	_ = godotenv.Load()

	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("REWORD_DEBUG"), "1") || strings.EqualFold(os.Getenv("REWORD_DEBUG"), "true")
}
