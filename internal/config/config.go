// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string

	// Data directory holding the embedded database.
	DataDir string

	// AI provider settings
	AIProvider string // "gemini" or "openai"

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. It returns an error when the active provider has no
// API key: without a backend credential the application cannot run, so the
// failure happens here at startup rather than on the first generation.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("MEDUSA_HOST", "127.0.0.1"),
		Port: envOrDefault("MEDUSA_PORT", "8321"),

		DataDir: os.Getenv("MEDUSA_DATA_DIR"),

		AIProvider: envOrDefault("AI_PROVIDER", "gemini"),

		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".medusa-yt-tools")
	}

	switch cfg.AIProvider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set when AI_PROVIDER=gemini")
		}
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set when AI_PROVIDER=openai")
		}
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q (want gemini or openai)", cfg.AIProvider)
	}

	return cfg, nil
}

// DatabasePath returns the SQLite database file location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "medusa.db")
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
