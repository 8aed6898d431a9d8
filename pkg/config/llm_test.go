package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveLLMConfigDefaults(t *testing.T) {
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("AGENT_TEMPERATURE", "")
	t.Setenv("AGENT_MAX_TOKENS", "")
	t.Setenv("AGENT_TIMEOUT", "")
	t.Setenv("VERBOSE", "")

	cfg := resolveLLMConfig(nil)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultAPIKeyEnv, cfg.APIKeyEnv)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.Verbose)
}

func TestResolveLLMConfigFromEnvironment(t *testing.T) {
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("AGENT_TEMPERATURE", "0.2")
	t.Setenv("AGENT_MAX_TOKENS", "4096")
	t.Setenv("AGENT_TIMEOUT", "60")
	t.Setenv("VERBOSE", "false")

	cfg := resolveLLMConfig(nil)

	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.False(t, cfg.Verbose)
}

func TestResolveLLMConfigYAMLWinsOverEnvironment(t *testing.T) {
	t.Setenv("GROQ_MODEL", "env-model")

	cfg := resolveLLMConfig(&LLMYAMLConfig{
		Model:     "yaml-model",
		BaseURL:   "https://example.com/v1",
		APIKeyEnv: "OTHER_KEY",
	})

	assert.Equal(t, "yaml-model", cfg.Model)
	assert.Equal(t, "https://example.com/v1", cfg.BaseURL)
	assert.Equal(t, "OTHER_KEY", cfg.APIKeyEnv)
}

func TestResolveLLMConfigUnparseableEnvFallsBack(t *testing.T) {
	t.Setenv("AGENT_TEMPERATURE", "warm")
	t.Setenv("AGENT_MAX_TOKENS", "many")
	t.Setenv("VERBOSE", "loud")

	cfg := resolveLLMConfig(nil)

	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.True(t, cfg.Verbose)
}
