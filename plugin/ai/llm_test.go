package ai

import (
	"testing"

	"github.com/hamzemohamed32/codementor/internal/profile"
)

// TestNewLLMService tests service creation.
func TestNewLLMService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *LLMConfig
		expectError bool
	}{
		{
			name: "OpenRouter config",
			cfg: &LLMConfig{
				BaseURL:     "https://openrouter.ai/api/v1",
				APIKey:      "test-key",
				Model:       "google/gemini-2.0-flash-exp:free",
				MaxTokens:   2000,
				Temperature: 0.7,
			},
			expectError: false,
		},
		{
			name: "OpenAI config",
			cfg: &LLMConfig{
				APIKey:      "test-key",
				Model:       "gpt-4o-mini",
				MaxTokens:   4096,
				Temperature: 0.5,
			},
			expectError: false,
		},
		{
			name:        "nil config uses defaults",
			cfg:         nil,
			expectError: false,
		},
		{
			name:        "missing model",
			cfg:         &LLMConfig{APIKey: "test-key"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLLMService(tt.cfg)
			if tt.expectError && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewLLMConfigFromProfile(t *testing.T) {
	p := &profile.Profile{
		AIBaseURL:     "https://api.example.com/v1",
		AIAPIKey:      "sk-abc",
		AIModel:       "custom-model",
		AIMaxTokens:   512,
		AITemperature: 0.2,
	}

	cfg := NewLLMConfigFromProfile(p)
	if cfg.BaseURL != p.AIBaseURL || cfg.APIKey != p.AIAPIKey || cfg.Model != p.AIModel {
		t.Fatalf("profile values not carried over: %+v", cfg)
	}
	if cfg.MaxTokens != 512 {
		t.Fatalf("expected max tokens 512, got %d", cfg.MaxTokens)
	}

	empty := NewLLMConfigFromProfile(&profile.Profile{})
	if empty.MaxTokens != 2000 || empty.Model == "" {
		t.Fatalf("defaults not applied: %+v", empty)
	}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected validation error without API key")
	}
}
