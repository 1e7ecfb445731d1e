package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Configured())
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 20000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("SITECTL_LLM_MODEL", "gemini-2.0-pro")
	t.Setenv("SITECTL_LLM_ENDPOINT", "http://localhost:9999")
	t.Setenv("SITECTL_LLM_TIMEOUT_MS", "5000")
	t.Setenv("SITECTL_LLM_MAX_RETRIES", "3")
	t.Setenv("SITECTL_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.True(t, cfg.Configured())
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-pro", cfg.Model)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("SITECTL_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("SITECTL_LLM_MAX_RETRIES", "-1")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}
