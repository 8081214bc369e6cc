package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_MAX_TOKENS",
		"OPENAI_TEMPERATURE", "OPENAI_TIMEOUT_SECONDS",
		"WEBHOOK_VERIFY_TOKEN", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.OpenAIAPIKey != "" {
		t.Error("API key should default to empty (fallback-only mode)")
	}
	if cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.MaxTokens != 200 {
		t.Errorf("MaxTokens = %d, want 200", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_MAX_TOKENS", "300")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()

	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.MaxTokens != 300 {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("OPENAI_MAX_TOKENS", "not-a-number")

	if got := getEnvInt("OPENAI_MAX_TOKENS", 200); got != 200 {
		t.Errorf("getEnvInt = %d, want default 200", got)
	}
}
