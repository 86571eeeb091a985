package domain

// Config mirrors ~/.reword/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Model               ModelSettings   `yaml:"model"`
	Retry               RetrySettings   `yaml:"retry"`
	History             HistorySettings `yaml:"history"`
}

// ModelSettings describes the remote completion endpoint.
type ModelSettings struct {
	// ModelID is the model name sent with each request.
	ModelID string `yaml:"model_id"`
	// Endpoint overrides the provider base URL. Empty means the hosted
	// OpenAI API via the official SDK; anything else (e.g. a localhost
	// Ollama URL) selects the generic OpenAI-compatible HTTP client.
	Endpoint string `yaml:"endpoint"`
	// AuthEnvVar names the environment variable holding the API key.
	AuthEnvVar string `yaml:"auth_env_var"`
	// TimeoutSeconds bounds each remote request.
	TimeoutSeconds int `yaml:"timeout"`
}

// RetrySettings controls the transient-failure retry policy.
type RetrySettings struct {
	MaxAttempts           int `yaml:"max_attempts"`
	InitialBackoffSeconds int `yaml:"initial_backoff_seconds"`
}

// HistorySettings locates the usage log.
type HistorySettings struct {
	Path string `yaml:"path"`
}
