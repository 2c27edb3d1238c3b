// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the service and CLI.
type Config struct {
	// HTTPAddr is the address the API server listens on.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Provider selects the model backend: "anthropic" or "openai".
	Provider string `env:"LLM_PROVIDER" envDefault:"anthropic"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`

	// OpenAIEndpoint allows pointing at an OpenAI-compatible server.
	OpenAIEndpoint string `env:"OPENAI_ENDPOINT"`

	// ExtractModel and GenerateModel override the provider defaults.
	ExtractModel  string `env:"EXTRACT_MODEL"`
	GenerateModel string `env:"GENERATE_MODEL"`

	ExtractMaxTokens  int `env:"EXTRACT_MAX_TOKENS" envDefault:"5000"`
	GenerateMaxTokens int `env:"GENERATE_MAX_TOKENS" envDefault:"16000"`

	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	ExtractTimeout  time.Duration `env:"EXTRACT_TIMEOUT" envDefault:"2m"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"5m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if present, then parses the environment into a
// Config. Missing .env files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks provider selection and the matching credential.
func (c *Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=anthropic")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected anthropic or openai)", c.Provider)
	}
	return nil
}
