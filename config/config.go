package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// OpenAI configuration
	OpenAIAPIKey   string
	OpenAIModel    string
	MaxTokens      int
	Temperature    float64
	RequestTimeout time.Duration

	// Webhook configuration
	VerifyToken string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		MaxTokens:      getEnvInt("OPENAI_MAX_TOKENS", 200),
		Temperature:    getEnvFloat("OPENAI_TEMPERATURE", 0.7),
		RequestTimeout: time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 15)) * time.Second,
		VerifyToken:    getEnv("WEBHOOK_VERIFY_TOKEN", "pneuma_verify_token_123"),
		Port:           getEnv("PORT", "8080"),
	}

	// Missing API key is a valid state: the bot answers from the canned fallback table
	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, running in fallback-only mode")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		slog.Warn("Invalid float in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}
