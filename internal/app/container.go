// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"reword/internal/domain"
	"reword/internal/infrastructure/ai"
	"reword/internal/infrastructure/config"
	"reword/internal/infrastructure/history"
	"reword/internal/pkg/logger"
	"reword/internal/ports"
	"reword/internal/services"
)

// Container holds the wired dependency graph.
type Container struct {
	Config       domain.Config
	Tasks        *domain.TaskRegistry
	Formatter    *services.Formatter
	HistoryStore ports.HistoryStore
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph. A missing API key is a
// fatal startup condition surfaced as an error.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewZap(verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	apiKey := os.Getenv(cfg.Model.AuthEnvVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not found in environment variables", cfg.Model.AuthEnvVar)
	}

	tasks := domain.DefaultTaskRegistry()
	historyStore := history.NewFileStore(cfg.History.Path)
	client := ai.NewClient(cfg.Model, apiKey)

	formatter := services.NewFormatter(tasks, client, historyStore, log)
	if cfg.Retry.MaxAttempts > 0 {
		formatter.MaxAttempts = cfg.Retry.MaxAttempts
	}
	if cfg.Retry.InitialBackoffSeconds > 0 {
		formatter.InitialBackoff = time.Duration(cfg.Retry.InitialBackoffSeconds) * time.Second
	}

	return &Container{
		Config:       cfg,
		Tasks:        tasks,
		Formatter:    formatter,
		HistoryStore: historyStore,
		Logger:       log,
	}, nil
}
