package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generative-text subsystem.
type Config struct {
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. Without an API key
// the subsystem stays inert and callers fall back to canned text.
func DefaultConfig() Config {
	return Config{
		APIKey:     "",
		LogCalls:   false,
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  20000,
		MaxRetries: 1,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SITECTL_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SITECTL_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SITECTL_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SITECTL_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SITECTL_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// Configured reports whether a credential is present. Without one, callers
// must short-circuit to fallback text instead of attempting a call.
func (c Config) Configured() bool {
	return c.APIKey != ""
}
