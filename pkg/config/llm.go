package config

import (
	"os"
	"strconv"
	"time"
)

// Built-in LLM defaults. The base URL is Groq's OpenAI-compatible endpoint;
// any other OpenAI-compatible service works via base_url override.
const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.1-8b-instant"
	DefaultAPIKeyEnv   = "GROQ_API_KEY"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 300 * time.Second
)

// LLMYAMLConfig is the llm section of draftforge.yaml. All fields optional;
// unset fields fall back to environment variables, then built-in defaults.
type LLMYAMLConfig struct {
	Model     string `yaml:"model,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
}

// LLMConfig is the fully-resolved LLM configuration used by the HTTP client
// and the workflow executor.
type LLMConfig struct {
	// Model identifier sent with every completion request
	Model string

	// Base URL for the OpenAI-compatible API
	BaseURL string

	// Name of the environment variable holding the API key
	APIKeyEnv string

	// Default sampling temperature (phases may override per-phase)
	Temperature float64

	// Fixed maximum-output-token budget for every completion
	MaxTokens int

	// HTTP client timeout for a single completion call
	Timeout time.Duration

	// Verbose enables logging of the rendered context passed to each phase
	Verbose bool
}

// APIKey reads the API key from the configured environment variable.
// Empty means unset; validation treats that as fatal.
func (c *LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// resolveLLMConfig merges YAML overrides, environment variables, and
// built-in defaults into a resolved LLMConfig.
// Precedence: YAML > environment > built-in default.
func resolveLLMConfig(y *LLMYAMLConfig) *LLMConfig {
	cfg := &LLMConfig{
		Model:       getEnvDefault("GROQ_MODEL", DefaultModel),
		BaseURL:     DefaultBaseURL,
		APIKeyEnv:   DefaultAPIKeyEnv,
		Temperature: parseFloatEnv("AGENT_TEMPERATURE", DefaultTemperature),
		MaxTokens:   parseIntEnv("AGENT_MAX_TOKENS", DefaultMaxTokens),
		Timeout:     time.Duration(parseIntEnv("AGENT_TIMEOUT", int(DefaultTimeout/time.Second))) * time.Second,
		Verbose:     parseBoolEnv("VERBOSE", true),
	}

	if y == nil {
		return cfg
	}
	if y.Model != "" {
		cfg.Model = y.Model
	}
	if y.BaseURL != "" {
		cfg.BaseURL = y.BaseURL
	}
	if y.APIKeyEnv != "" {
		cfg.APIKeyEnv = y.APIKeyEnv
	}
	return cfg
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseFloatEnv(key string, defaultValue float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return defaultValue
}
