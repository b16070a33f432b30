package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(LoaderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", settings.BaseURL)
	}
	if settings.MaxRetries != DefaultMaxRetries {
		t.Errorf("expected default max retries, got %d", settings.MaxRetries)
	}
	if settings.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", settings.Timeout)
	}
	if settings.Logging.Level != "info" {
		t.Errorf("expected info log level, got %s", settings.Logging.Level)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LLMKIT_API_KEY", "sk-test")
	t.Setenv("LLMKIT_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("LLMKIT_MAX_RETRIES", "5")

	settings, err := Load(LoaderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.APIKey != "sk-test" {
		t.Errorf("expected api key from env, got %q", settings.APIKey)
	}
	if settings.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("expected base URL from env, got %s", settings.BaseURL)
	}
	if settings.MaxRetries != 5 {
		t.Errorf("expected max retries 5, got %d", settings.MaxRetries)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "llmkit.yml")
	content := []byte("base_url: http://yaml-host/v1\nmax_retries: 7\ntimeout: 10s\nlogging:\n  level: debug\n")
	if err := os.WriteFile(cfgPath, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	settings, err := Load(LoaderOptions{ConfigFile: cfgPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.BaseURL != "http://yaml-host/v1" {
		t.Errorf("expected base URL from yaml, got %s", settings.BaseURL)
	}
	if settings.MaxRetries != 7 {
		t.Errorf("expected max retries 7, got %d", settings.MaxRetries)
	}
	if settings.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", settings.Timeout)
	}
	if settings.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", settings.Logging.Level)
	}
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "llmkit.yml")
	if err := os.WriteFile(cfgPath, []byte("base_url: http://yaml-host/v1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LLMKIT_BASE_URL", "http://env-host/v1")

	settings, err := Load(LoaderOptions{ConfigFile: cfgPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.BaseURL != "http://env-host/v1" {
		t.Errorf("expected env to win, got %s", settings.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("LLMKIT_API_KEY=sk-from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	settings, err := Load(LoaderOptions{EnvFile: envPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.APIKey != "sk-from-dotenv" {
		t.Errorf("expected api key from .env, got %q", settings.APIKey)
	}
	// godotenv mutates the process env; clean up for other tests.
	_ = os.Unsetenv("LLMKIT_API_KEY")
}

func TestLoad_MissingExplicitConfigFails(t *testing.T) {
	_, err := Load(LoaderOptions{ConfigFile: "/does/not/exist.yml"})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestSettings_Validate(t *testing.T) {
	s := &Settings{}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := &Settings{BaseURL: "x", Timeout: -1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
}
