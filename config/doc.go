// Package config loads SDK settings from LLMKIT_* environment variables,
// an optional .env file, and an optional YAML file, with environment
// taking precedence.
//
//	settings, err := config.Load(config.LoaderOptions{})
//	client, err := llmkit.New(llmkit.Config{
//	    BaseURL:    settings.BaseURL,
//	    Token:      settings.APIKey,
//	    MaxRetries: settings.MaxRetries,
//	})
package config
