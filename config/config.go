package config

import (
	"fmt"
	"time"

	"github.com/kbukum/llmkit/logger"
)

const (
	// DefaultBaseURL is the provider's production endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultMaxRetries is the default transient-failure retry budget.
	DefaultMaxRetries = 3
	// DefaultTimeout is the per-request send timeout.
	DefaultTimeout = 30 * time.Second
)

// Settings holds SDK configuration resolved from environment variables,
// an optional .env file, and an optional YAML file.
type Settings struct {
	// APIKey is the bearer token. Empty means unauthenticated.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL is the API base URL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// MaxRetries is the number of retries for transient failures.
	// Negative disables retries.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// Logging configures SDK logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.MaxRetries == 0 {
		s.MaxRetries = DefaultMaxRetries
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	s.Logging.ApplyDefaults()
}

// Validate checks the settings.
func (s *Settings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive")
	}
	return s.Logging.Validate()
}
