package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "LLMKIT"

// LoaderOptions controls where configuration is read from.
type LoaderOptions struct {
	// ConfigFile is an explicit YAML config file path. When empty, standard
	// locations are searched (./llmkit.yml, ./config/llmkit.yml).
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// when present.
	EnvFile string
}

// Load resolves SDK settings with precedence: environment variables
// (LLMKIT_*), then .env file values, then YAML file values, then defaults.
func Load(opts LoaderOptions) (*Settings, error) {
	if envFile := resolveEnvFile(opts.EnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register the keys so AutomaticEnv can resolve them.
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("max_retries", DefaultMaxRetries)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.timestamp", true)

	if cfgFile := resolveConfigFile(opts.ConfigFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// resolveConfigFile returns the explicit path or the first standard
// location that exists.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{"./llmkit.yml", "./config/llmkit.yml"} {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// resolveEnvFile returns the explicit path or ./.env when present.
func resolveEnvFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fileExists("./.env") {
		return "./.env"
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
