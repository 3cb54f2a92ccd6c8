package ai

import (
	"fmt"

	"github.com/hamzemohamed32/codementor/internal/profile"
)

// LLMConfig holds the completion service configuration.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// DefaultLLMConfig returns the default configuration. The defaults target
// OpenRouter, which speaks the OpenAI chat-completions protocol.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		BaseURL:     "https://openrouter.ai/api/v1",
		Model:       "google/gemini-2.0-flash-exp:free",
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}

// NewLLMConfigFromProfile builds the LLM configuration from the server profile.
func NewLLMConfigFromProfile(p *profile.Profile) *LLMConfig {
	cfg := DefaultLLMConfig()
	if p.AIBaseURL != "" {
		cfg.BaseURL = p.AIBaseURL
	}
	cfg.APIKey = p.AIAPIKey
	if p.AIModel != "" {
		cfg.Model = p.AIModel
	}
	if p.AIMaxTokens > 0 {
		cfg.MaxTokens = p.AIMaxTokens
	}
	if p.AITemperature > 0 {
		cfg.Temperature = p.AITemperature
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *LLMConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required, set CODEMENTOR_AI_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}
