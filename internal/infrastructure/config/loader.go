// Package config loads YAML configuration, writing a default file on
// first run.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reword/internal/domain"
	"reword/internal/ports"
)

// FileLoader loads YAML configuration from ~/.reword/config.yaml
// (overridable via REWORD_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path uses the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file location.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("REWORD_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".reword", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Model: domain.ModelSettings{
			ModelID:        "gpt-4o-mini",
			AuthEnvVar:     "OPENAI_API_KEY",
			TimeoutSeconds: 60,
		},
		Retry: domain.RetrySettings{
			MaxAttempts:           3,
			InitialBackoffSeconds: 1,
		},
		History: domain.HistorySettings{
			Path: filepath.Join(userHomeDir(), ".reword", "history.json"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Model.ModelID == "" {
		cfg.Model.ModelID = "gpt-4o-mini"
	}
	if cfg.Model.AuthEnvVar == "" {
		cfg.Model.AuthEnvVar = "OPENAI_API_KEY"
	}
	if cfg.Model.TimeoutSeconds == 0 {
		cfg.Model.TimeoutSeconds = 60
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = 3
	}
	if cfg.Retry.InitialBackoffSeconds == 0 {
		cfg.Retry.InitialBackoffSeconds = 1
	}
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(userHomeDir(), ".reword", "history.json")
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
